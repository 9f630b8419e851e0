// Package types provides type definitions for structured data used throughout the resume-studio system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// RenderedSection is the output of composing one section: a markup fragment
// keyed by section name. Empty sections contribute no visible output.
type RenderedSection struct {
	Key   string
	HTML  string
	Empty bool
}

// CoverLetterData holds caller-supplied cover letter fields. Every field is
// optional; missing values resolve through the resume and template defaults.
type CoverLetterData struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	JobTitle  string `json:"jobTitle,omitempty"`
	Company   string `json:"company,omitempty"`
	Recipient string `json:"recipient,omitempty"`
	Intro     string `json:"intro,omitempty"`
	Body      string `json:"body,omitempty"`
	Closing   string `json:"closing,omitempty"`
}

// GenerateRequest is the request body for the PDF/HTML generation endpoints.
type GenerateRequest struct {
	Data                map[string]any    `json:"data" validate:"required"`
	Template            string            `json:"template,omitempty"`
	CustomColors        map[string]string `json:"customColors,omitempty"`
	Country             string            `json:"country,omitempty" validate:"omitempty,oneof=us uk eu in"`
	CoverLetter         *CoverLetterData  `json:"coverLetter,omitempty"`
	CoverLetterTemplate string            `json:"coverLetterTemplate,omitempty"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
