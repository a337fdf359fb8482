package quotestream

const (
	QuoteUpdateEvent = "QuoteUpdateEvent"
	Error            = "DefaultError"
)
