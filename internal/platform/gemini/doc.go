// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API to recommend a chart type for a data
// description and an analysis objective.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting request handling to Google's external Gemini AI service.
// It translates between the application's domain models and the Gemini API
// without exposing the details of the external service to the core application.
//
// Key components:
//
// 1. Generator:
//   - Implements the generation.Generator interface
//   - Streams content from the Gemini API as it is produced
//   - Constrains output with a response schema and a low temperature
//
// 2. Prompt Management:
//   - Uses an embedded prompt template, or loads one from a file
//   - Embeds the chart selection guide and the user's fields verbatim
//
// 3. Error Handling:
//   - Wraps transport and API failures in generation.ErrUpstream
//   - Reports safety blocks as generation.ErrContentBlocked
//
// The package depends on the google.golang.org/genai client library for
// communicating with the Gemini API.
package gemini
