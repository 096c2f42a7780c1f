// Package domain contains the core entities of the memo-sheet generator:
// the raw form input collected from a caller, the normalized
// GenerationRequest handed to the prompt builder, the UploadedFile
// references read during normalization, and the MemoFiche result.
//
// None of these values are persisted. Each one lives for a single
// submit-and-respond cycle.
package domain
