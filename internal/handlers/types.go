package handlers

// ShortenRequest is the request body for allocating a short code.
type ShortenRequest struct {
	Body struct {
		URL string `doc:"The URL to shorten" example:"https://example.com/very/long/path" json:"url"`
	}
}

// ShortenResponse is the response for a successfully allocated short code.
type ShortenResponse struct {
	Headers struct {
		Location string `doc:"The short URL location" header:"Location"`
	}
	Body struct {
		Code     string `doc:"The assigned short code" example:"QxidHT"                              json:"code"`
		ShortURL string `doc:"The full short URL"      example:"http://localhost:9876/QxidHT"        json:"shortUrl"`
		URL      string `doc:"The original URL"        example:"https://example.com/very/long/path"  json:"url"`
	}
}

// RedirectRequest is the request for resolving a short code.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"QxidHT" path:"code"`
}

// RedirectResponse carries the redirect to the original URL.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The original URL" header:"Location"`
	}
}
