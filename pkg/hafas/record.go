package hafas

import (
	"bytes"
	"encoding/json"
)

// Departure is the raw departure record as delivered by the API
type Departure struct {
	JourneyDetailRef *JourneyDetailRef `json:"JourneyDetailRef" validate:"required"`
	Products         Products          `json:"Product"`

	// Name is the unprocessed line name of the record itself
	Name *string `json:"name"`

	Date   string  `json:"date" validate:"required"`
	Time   string  `json:"time" validate:"required"`
	Tz     *int    `json:"tz"`
	RtDate *string `json:"rtDate"`
	RtTime *string `json:"rtTime"`
	RtTz   *int    `json:"rtTz"`

	Direction *string `json:"direction"`
	Origin    *string `json:"origin"`
	Stop      *string `json:"stop"`

	Platform   *PlatformInfo `json:"platform"`
	RtPlatform *PlatformInfo `json:"rtPlatform"`
	Track      *string       `json:"track"`

	Notes *Notes `json:"Notes"`

	Cancelled bool `json:"cancelled"`
}

type JourneyDetailRef struct {
	Ref string `json:"ref" validate:"required"`
}

type Product struct {
	Name         string        `json:"name"`
	CatCode      FlexString    `json:"catCode"`
	OperatorCode *string       `json:"operatorCode"`
	OperatorInfo *OperatorInfo `json:"operatorInfo"`
	Icon         *Icon         `json:"icon"`
}

type OperatorInfo struct {
	Name *string `json:"name"`
}

type Icon struct {
	Resource        string     `json:"res,omitempty"`
	BackgroundColor *IconColor `json:"backgroundColor,omitempty"`
	ForegroundColor *IconColor `json:"foregroundColor,omitempty"`
}

type IconColor struct {
	Hex string `json:"hex"`
}

type PlatformInfo struct {
	Type   *string `json:"type"`
	Text   *string `json:"text"`
	Hidden bool    `json:"hidden"`
}

type Notes struct {
	Note []RecordNote `json:"Note"`
}

type RecordNote struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Products accepts both a list of products and a single product object
type Products []Product

func (p *Products) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '{' {
		var product Product
		if err := json.Unmarshal(data, &product); err != nil {
			return err
		}
		*p = Products{product}
		return nil
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return err
	}
	*p = products

	return nil
}

// FlexString holds a code the API sends either as a JSON string or as a number
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*f = FlexString(value)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*f = FlexString(number.String())

	return nil
}
