package models

import (
	"strings"
	"time"
)

// Stage is the pipeline phase of a job.
type Stage string

const (
	StageLead         Stage = "LEAD"
	StageQuote        Stage = "QUOTE"
	StageScheduled    Stage = "SCHEDULED"
	StageInstallation Stage = "INSTALLATION"
	StageInvoice      Stage = "INVOICE"
	StageCompleted    Stage = "COMPLETED"
)

// Stages in pipeline order, as shown in the stage tabs.
var Stages = []Stage{StageLead, StageQuote, StageScheduled, StageInstallation, StageInvoice, StageCompleted}

var stageLabels = map[Stage]string{
	StageLead:         "Lead",
	StageQuote:        "Quote",
	StageScheduled:    "Accepted",
	StageInstallation: "Installation",
	StageInvoice:      "Invoice",
	StageCompleted:    "Completed",
}

// Label returns the display name for the stage (SCHEDULED shows as Accepted).
func (s Stage) Label() string {
	if l, ok := stageLabels[s]; ok {
		return l
	}
	return string(s)
}

// Valid reports whether s is one of the known pipeline stages.
func (s Stage) Valid() bool {
	_, ok := stageLabels[s]
	return ok
}

// Lead status values. ON_HOLD is treated as an alias for CALLBACK everywhere.
const (
	LeadStatusNew      = "NEW"
	LeadStatusCallback = "CALLBACK"
	LeadStatusOnHold   = "ON_HOLD"
	LeadStatusDead     = "DEAD"
)

// Quote status values.
const (
	QuoteStatusOpen     = "OPEN"
	QuoteStatusDeferred = "DEFERRED"
	QuoteStatusDeclined = "DECLINED"
	QuoteStatusAccepted = "ACCEPTED"
)

// LeadSources are the tags offered on the new-lead form.
var LeadSources = []string{
	"Website", "Home Show", "TV", "Social Media", "Radio",
	"Vehicle Signage", "Mailchimp", "Referral", "Printed Media",
	"Door Drop", "Google Ads", "Contact Form",
}

// Person is a salesperson/user reference embedded in job records.
type Person struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// User is the authenticated profile returned by the login mutation.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Lead struct {
	Status           string     `json:"leadStatus,omitempty"`
	Sources          []string   `json:"leadSource,omitempty"`
	AllocatedTo      *Person    `json:"allocatedTo,omitempty"`
	CallbackDate     *time.Time `json:"callbackDate,omitempty"`
	QuoteBookingDate *time.Time `json:"quoteBookingDate,omitempty"`
}

type QuoteExtra struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Quote struct {
	QuoteNumber       string       `json:"quoteNumber,omitempty"`
	QuoteDate         *time.Time   `json:"quoteDate,omitempty"`
	Status            string       `json:"status,omitempty"`
	CTotal            float64      `json:"c_total,omitempty"`
	CDeposit          float64      `json:"c_deposit,omitempty"`
	DepositPercentage float64      `json:"depositPercentage,omitempty"`
	ConsentFee        float64      `json:"consentFee,omitempty"`
	Comments          string       `json:"quoteComments,omitempty"`
	WallInsulation    bool         `json:"wallInsulation,omitempty"`
	WallSQM           float64      `json:"wallSQM,omitempty"`
	WallSQMPrice      float64      `json:"wallSQMPrice,omitempty"`
	WallCavityDepth   float64      `json:"wallCavityDepth,omitempty"`
	WallRValue        float64      `json:"wallRValue,omitempty"`
	WallBags          float64      `json:"wallBags,omitempty"`
	CeilingInsulation bool         `json:"ceilingInsulation,omitempty"`
	CeilingSQM        float64      `json:"ceilingSQM,omitempty"`
	CeilingSQMPrice   float64      `json:"ceilingSQMPrice,omitempty"`
	CeilingRValue     float64      `json:"ceilingRValue,omitempty"`
	CeilingDownlights int          `json:"ceilingDownlights,omitempty"`
	CeilingBags       float64      `json:"ceilingBags,omitempty"`
	Extras            []QuoteExtra `json:"extras,omitempty"`
	SitePlans         []string     `json:"sitePlans,omitempty"`
}

type ContactDetails struct {
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	MobilePhone   string `json:"mobilePhone,omitempty"`
	Phone         string `json:"phone,omitempty"`
	StreetAddress string `json:"streetAddress,omitempty"`
	Suburb        string `json:"suburb,omitempty"`
	City          string `json:"city,omitempty"`
	PostCode      string `json:"postCode,omitempty"`
	LotDPNumber   string `json:"lotDPNumber,omitempty"`
}

// Address joins the street-level parts for display.
func (c *ContactDetails) Address() string {
	if c == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{c.StreetAddress, c.Suburb, c.City, c.PostCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

type Client struct {
	ContactDetails *ContactDetails `json:"contactDetails,omitempty"`
	BillingDetails *ContactDetails `json:"billingDetails,omitempty"`
}

// Job is one customer engagement tracked through the pipeline.
type Job struct {
	ID         string     `json:"_id"`
	JobNumber  int        `json:"jobNumber"`
	Stage      Stage      `json:"stage"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	ArchivedAt *time.Time `json:"archivedAt,omitempty"`
	Lead       *Lead      `json:"lead,omitempty"`
	Quote      *Quote     `json:"quote,omitempty"`
	Client     *Client    `json:"client,omitempty"`
	EBAForm    *EBAForm   `json:"ebaForm,omitempty"`
}

// Archived reports whether the job has been soft-deleted.
func (j *Job) Archived() bool {
	return j.ArchivedAt != nil
}

// LeadStatus returns the lead status, normalised to upper case.
func (j *Job) LeadStatus() string {
	if j.Lead == nil {
		return ""
	}
	return strings.ToUpper(j.Lead.Status)
}

// QuoteStatus returns the quote status, normalised to upper case.
func (j *Job) QuoteStatus() string {
	if j.Quote == nil {
		return ""
	}
	return strings.ToUpper(j.Quote.Status)
}

// AllocatedID returns the id of the allocated salesperson, if any.
func (j *Job) AllocatedID() string {
	if j.Lead == nil || j.Lead.AllocatedTo == nil {
		return ""
	}
	return j.Lead.AllocatedTo.ID
}

// Contact returns the contact details, never nil.
func (j *Job) Contact() *ContactDetails {
	if j.Client == nil || j.Client.ContactDetails == nil {
		return &ContactDetails{}
	}
	return j.Client.ContactDetails
}
