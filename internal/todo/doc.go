// Package todo holds the task list data model and its persisted form.
//
// The task list is stored as a single JSON array:
//
//	[
//	  {
//	    "id": "0f8fad5b-d9cb-469f-a165-70867728950e",
//	    "text": "Buy milk",
//	    "done": false,
//	    "createdAt": "2026-10-18T09:30:00.123456789Z",
//	    "editedAt": null
//	  }
//	]
//
// # Validation
//
// Decoded blobs are checked against the embedded JSON Schema (draft 2020-12)
// in tasks.schema.json. When the schema cannot be compiled, a minimal
// structural check is used instead:
//   - every task has non-blank text
//   - every task has a non-zero createdAt
//
// An editedAt earlier than createdAt is reported as a warning only.
//
// # Positions
//
// Tasks are addressed by zero-based position. Insertion order is display
// order and nothing reorders the list. The id field is assigned once at
// creation and is only used to find a task again after positions shift.
package todo
