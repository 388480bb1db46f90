// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	sliceNZYfaIjIUgyΣnjlBMXQU8wΞΞ = ord.NewSliceSer[string](ord.String)
	sliceeMΔB2XTyscnVmpiTa6ib1wΞΞ = ord.NewSliceSer[float32](varint.Float32)
	slicehPHZcVXyO0yI94yDRyfrkgΞΞ = ord.NewSliceSer[Education](EducationMUS)
	slicesdH1Q7y78IWdpmK4gZcxBgΞΞ = ord.NewSliceSer[Experience](ExperienceMUS)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var ExperienceMUS = experienceMUS{}

type experienceMUS struct{}

func (s experienceMUS) Marshal(v Experience, bs []byte) (n int) {
	n = ord.String.Marshal(v.Title, bs)
	n += ord.String.Marshal(v.Company, bs[n:])
	n += ord.String.Marshal(v.Duration, bs[n:])
	return n + ord.String.Marshal(v.Description, bs[n:])
}

func (s experienceMUS) Unmarshal(bs []byte) (v Experience, n int, err error) {
	v.Title, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Company, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Duration, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s experienceMUS) Size(v Experience) (size int) {
	size = ord.String.Size(v.Title)
	size += ord.String.Size(v.Company)
	size += ord.String.Size(v.Duration)
	return size + ord.String.Size(v.Description)
}

func (s experienceMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var EducationMUS = educationMUS{}

type educationMUS struct{}

func (s educationMUS) Marshal(v Education, bs []byte) (n int) {
	n = ord.String.Marshal(v.School, bs)
	return n + ord.String.Marshal(v.Degree, bs[n:])
}

func (s educationMUS) Unmarshal(bs []byte) (v Education, n int, err error) {
	v.School, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Degree, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s educationMUS) Size(v Education) (size int) {
	size = ord.String.Size(v.School)
	return size + ord.String.Size(v.Degree)
}

func (s educationMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var ProfileRecordMUS = profileRecordMUS{}

type profileRecordMUS struct{}

func (s profileRecordMUS) Marshal(v ProfileRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.LinkedInURL, bs[n:])
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.Headline, bs[n:])
	n += ord.String.Marshal(v.Location, bs[n:])
	n += ord.String.Marshal(v.CurrentRole, bs[n:])
	n += ord.String.Marshal(v.Company, bs[n:])
	n += ord.String.Marshal(v.Summary, bs[n:])
	n += slicesdH1Q7y78IWdpmK4gZcxBgΞΞ.Marshal(v.Experience, bs[n:])
	n += slicehPHZcVXyO0yI94yDRyfrkgΞΞ.Marshal(v.Education, bs[n:])
	n += ord.Bool.Marshal(v.IsInvestor, bs[n:])
	n += ord.String.Marshal(v.InvestmentRole, bs[n:])
	n += sliceNZYfaIjIUgyΣnjlBMXQU8wΞΞ.Marshal(v.InvestmentFocus, bs[n:])
	n += sliceNZYfaIjIUgyΣnjlBMXQU8wΞΞ.Marshal(v.PortfolioCompanies, bs[n:])
	n += sliceNZYfaIjIUgyΣnjlBMXQU8wΞΞ.Marshal(v.SectorsOfInterest, bs[n:])
	n += sliceNZYfaIjIUgyΣnjlBMXQU8wΞΞ.Marshal(v.InvestmentStage, bs[n:])
	n += sliceeMΔB2XTyscnVmpiTa6ib1wΞΞ.Marshal(v.Vector, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s profileRecordMUS) Unmarshal(bs []byte) (v ProfileRecord, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.LinkedInURL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Headline, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Location, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CurrentRole, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Company, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Summary, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Experience, n1, err = slicesdH1Q7y78IWdpmK4gZcxBgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Education, n1, err = slicehPHZcVXyO0yI94yDRyfrkgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.IsInvestor, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InvestmentRole, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InvestmentFocus, n1, err = sliceNZYfaIjIUgyΣnjlBMXQU8wΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PortfolioCompanies, n1, err = sliceNZYfaIjIUgyΣnjlBMXQU8wΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SectorsOfInterest, n1, err = sliceNZYfaIjIUgyΣnjlBMXQU8wΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InvestmentStage, n1, err = sliceNZYfaIjIUgyΣnjlBMXQU8wΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceeMΔB2XTyscnVmpiTa6ib1wΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s profileRecordMUS) Size(v ProfileRecord) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.LinkedInURL)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.Headline)
	size += ord.String.Size(v.Location)
	size += ord.String.Size(v.CurrentRole)
	size += ord.String.Size(v.Company)
	size += ord.String.Size(v.Summary)
	size += slicesdH1Q7y78IWdpmK4gZcxBgΞΞ.Size(v.Experience)
	size += slicehPHZcVXyO0yI94yDRyfrkgΞΞ.Size(v.Education)
	size += ord.Bool.Size(v.IsInvestor)
	size += ord.String.Size(v.InvestmentRole)
	size += sliceNZYfaIjIUgyΣnjlBMXQU8wΞΞ.Size(v.InvestmentFocus)
	size += sliceNZYfaIjIUgyΣnjlBMXQU8wΞΞ.Size(v.PortfolioCompanies)
	size += sliceNZYfaIjIUgyΣnjlBMXQU8wΞΞ.Size(v.SectorsOfInterest)
	size += sliceNZYfaIjIUgyΣnjlBMXQU8wΞΞ.Size(v.InvestmentStage)
	size += sliceeMΔB2XTyscnVmpiTa6ib1wΞΞ.Size(v.Vector)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s profileRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicesdH1Q7y78IWdpmK4gZcxBgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicehPHZcVXyO0yI94yDRyfrkgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceNZYfaIjIUgyΣnjlBMXQU8wΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceNZYfaIjIUgyΣnjlBMXQU8wΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceNZYfaIjIUgyΣnjlBMXQU8wΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceNZYfaIjIUgyΣnjlBMXQU8wΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceeMΔB2XTyscnVmpiTa6ib1wΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
