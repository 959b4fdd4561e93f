// Package model defines shared data structures for the search service.
package model

// Job mirrors a row of the jobs table. InternalID is the storage-assigned
// primary key and the canonical display order (descending). The string date
// fields are free-form: scrapers store whatever the source platform showed.
type Job struct {
	InternalID        int64  `json:"internalId"`
	ExternalID        string `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	CompanyName       string `json:"companyName"`
	Location          string `json:"location"`
	WorkType          string `json:"workType"`
	SalaryDescription string `json:"salaryDescription"`
	DatePosted        string `json:"datePosted"`
	DateScraped       string `json:"dateScraped"`
	Source            string `json:"source"`
	Other             string `json:"other"`
	Remark            string `json:"remark"`
	JobClass          string `json:"jobClass"`
	JobSubclass       string `json:"jobSubclass"`
}

// FacetValue is one selectable value of a facet dimension, as stored in the
// job_class and source_platform lookup tables.
type FacetValue struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
