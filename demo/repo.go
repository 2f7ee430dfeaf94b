package main

// RequestPick is a body of pick request. Empty weights mean uniform pick.
type RequestPick struct {
	Options []any     `json:"options"`
	Weights []float64 `json:"weights"`
}

// ResponseValue wraps single generated value.
type ResponseValue struct {
	Value any `json:"value"`
}

// ResponseError describes failed request.
type ResponseError struct {
	Error string `json:"error"`
}
