// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

/*
Package corpus loads and serves the recipe corpus.

The corpus is a JSON array of recipe records:

	[
	  {
	    "id": 101,
	    "title": "Pad Thai",
	    "features": {
	      "ingredients": ["rice noodles", "egg", "peanuts"],
	      "tags": ["quick"],
	      "kitchen": ["thai"],
	      "course": ["main"]
	    }
	  }
	]

All four feature keys are required; an empty list is valid. Records are
validated on load and every bad record is reported at once, so a broken corpus
never reaches the term matrix. Unknown fields are kept verbatim and returned by
GET /recipes/{id}.

A Catalog is immutable. Reloads produce a new Catalog.
*/
package corpus
