package models

import "encoding/json"

// NoPreference is the dietary preference assumed when a client sends none.
const NoPreference = "No Preference"

type ContentRequest struct {
	Username string `json:"username"`
	Topic    string `json:"topic"`
	Language string `json:"language"`
}

// ContentBody is the JSON form of ContentRequest. Pointers tell a missing or
// null field apart from an empty string, which is accepted.
type ContentBody struct {
	Username *string `json:"username" binding:"required"`
	Topic    *string `json:"topic" binding:"required"`
	Language *string `json:"language" binding:"required"`
}

func (b ContentBody) Request() ContentRequest {
	return ContentRequest{
		Username: deref(b.Username),
		Topic:    deref(b.Topic),
		Language: deref(b.Language),
	}
}

type ContentResponse struct {
	Content string `json:"content"`
}

// FitnessRequest carries body measurements in centimeters and kilograms.
type FitnessRequest struct {
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	Goal   string `json:"goal"`
}

type FitnessBody struct {
	Height *int    `json:"height" binding:"required"`
	Weight *int    `json:"weight" binding:"required"`
	Goal   *string `json:"goal" binding:"required"`
}

func (b FitnessBody) Request() FitnessRequest {
	req := FitnessRequest{Goal: deref(b.Goal)}
	if b.Height != nil {
		req.Height = *b.Height
	}
	if b.Weight != nil {
		req.Weight = *b.Weight
	}
	return req
}

type FitnessResponse struct {
	BMI      float64  `json:"bmi"`
	Category string   `json:"category"`
	Plan     []string `json:"plan"`
}

type DiseaseRequest struct {
	Disease    string `json:"disease"`
	Preference string `json:"preference"`
}

// PreferenceOrDefault returns the request preference, or NoPreference when unset.
func (r DiseaseRequest) PreferenceOrDefault() string {
	if r.Preference == "" {
		return NoPreference
	}
	return r.Preference
}

// DiseaseBody is the JSON form of DiseaseRequest. Preference may be omitted
// or null.
type DiseaseBody struct {
	Disease    *string `json:"disease" binding:"required"`
	Preference *string `json:"preference"`
}

func (b DiseaseBody) Request() DiseaseRequest {
	req := DiseaseRequest{Disease: deref(b.Disease), Preference: NoPreference}
	if b.Preference != nil {
		req.Preference = *b.Preference
	}
	return req
}

type DiseaseResponse struct {
	Recommended []string `json:"recommended"`
	Avoid       []string `json:"avoid"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type RootResponse struct {
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// EnvelopeType names the operation carried by a websocket frame.
type EnvelopeType string

const (
	EnvelopeGenerate    EnvelopeType = "generate"
	EnvelopeFitnessPlan EnvelopeType = "fitness-plan"
	EnvelopeDiseaseDiet EnvelopeType = "disease-diet"
)

// Envelope is one request frame on the websocket transport. Payload holds the
// same JSON body the matching HTTP endpoint accepts.
type Envelope struct {
	Type    EnvelopeType    `json:"type"`
	ID      string          `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// EnvelopeReply answers exactly one Envelope. Either Data or Detail is set.
type EnvelopeReply struct {
	Type   EnvelopeType `json:"type"`
	ID     string       `json:"id,omitempty"`
	Data   interface{}  `json:"data,omitempty"`
	Detail string       `json:"detail,omitempty"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
