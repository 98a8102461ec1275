// Package generation defines the port through which the application asks an
// external AI/LLM service for a chart recommendation. It abstracts the
// details of LLM API integration (Gemini), so request handling depends only
// on the Generator interface and the error sentinels declared here.
package generation
