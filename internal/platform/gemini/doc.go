// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API for generating memo sheets from a prompt.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's pipeline to Google's external Gemini AI service
// through the google.golang.org/genai client library.
//
// Key components:
//
// 1. GeminiGenerator:
//   - Implements the generation.Generator interface
//   - Sends one GenerateContent request per call, without retry or streaming
//   - Extracts the Markdown text of the first candidate
//
// 2. Configuration validation:
//   - Refuses to build a client when the API key is missing or a placeholder
//
// 3. Error Handling:
//   - Maps the "API key not valid" service message to generation.ErrInvalidCredential
//   - Wraps every other failure in generation.ErrGenerationFailed
//   - Treats empty or safety-blocked responses as invalid responses
package gemini
