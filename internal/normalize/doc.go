// Package normalize combines the free text typed by a user with the text
// extracted from uploaded documents into the single additional-context
// string handed to the prompt builder.
//
// Text documents are read concurrently and joined in input order. Documents
// whose declared MIME type is not text are replaced by a placeholder naming
// the file, so their presence stays visible in the prompt. Reading is
// all-or-nothing: one unreadable document fails the whole normalization.
package normalize
