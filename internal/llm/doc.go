// Package llm extracts transactions from statement text with a language model.
// Only the Anthropic Messages API is supported; requests are rate limited and
// retried on throttling and server errors.
package llm
