package api

import "errors"

var ErrNegativeIndex = errors.New("index must be greater than or equal to zero")

type AddRequest struct {
	Index int `json:"index" description:"Zero-based position; positions at or past the end append"`
	Value int `json:"value" description:"Integer value to store"`
}

func (r *AddRequest) Validate() error {
	if r.Index < 0 {
		return ErrNegativeIndex
	}
	return nil
}

type ListResponse struct {
	Values []int `json:"values" description:"Stored values in head-to-tail order"`
	Length int   `json:"length" description:"Number of stored values"`
}

type RemoveResponse struct {
	Value  int `json:"value" description:"The removed value"`
	Length int `json:"length" description:"Number of values remaining"`
}

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}
