package seed

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/diwise/postharvest/pkg/postharvest/types"
)

// Dataset is the yaml representation of reference data. Studies refer to
// commodities by key since commodity ids are assigned on creation.
type Dataset struct {
	Commodities []Commodity `yaml:"commodities"`
	Studies     []Study     `yaml:"studies"`
}

type Commodity struct {
	Key            string `yaml:"key"`
	CommodityName  string `yaml:"commodityName"`
	Variety        string `yaml:"variety"`
	ScientificName string `yaml:"scientificName"`
	CoolingMethod  string `yaml:"coolingMethod"`
	Climacteric    bool   `yaml:"climacteric"`

	EthyleneSensitivity        []Ethylene    `yaml:"ethyleneSensitivity"`
	RespirationRate            []Respiration `yaml:"respirationRate"`
	ShelfLife                  []ShelfLife   `yaml:"shelfLife"`
	TemperatureRecommendations []Temperature `yaml:"temperatureRecommendations"`
	References                 []string      `yaml:"references"`
}

// Handling values are kept as text, numbers in the yaml are converted as written
type Ethylene struct {
	Temperature    string `yaml:"temperature"`
	C2H4Production string `yaml:"c2h4Production"`
	C2H4Class      string `yaml:"c2h4Class"`
}

type Respiration struct {
	Temperature string `yaml:"temperature"`
	RRRate      string `yaml:"rrRate"`
	RRClass     string `yaml:"rrClass"`
}

type ShelfLife struct {
	Temperature string `yaml:"temperature"`
	ShelfLife   string `yaml:"shelfLife"`
	Packaging   string `yaml:"packaging"`
	Description string `yaml:"description"`
}

type Temperature struct {
	MinTemp     string `yaml:"minTemp"`
	OptimumTemp string `yaml:"optimumTemp"`
	Description string `yaml:"description"`
	RH          string `yaml:"rh"`
}

type Study struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Source      string   `yaml:"source"`
	Objective   string   `yaml:"objective"`
	Commodities []string `yaml:"commodities"`
}

// Load reads and validates a dataset
func Load(r io.Reader) (*Dataset, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	ds := &Dataset{}
	if err := yaml.UnmarshalStrict(b, ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	if err := ds.validate(); err != nil {
		return nil, err
	}

	return ds, nil
}

func (ds *Dataset) validate() error {
	keys := map[string]bool{}

	for i, c := range ds.Commodities {
		if strings.TrimSpace(c.CommodityName) == "" {
			return fmt.Errorf("commodity #%d has no commodityName", i+1)
		}

		if c.Key == "" {
			continue
		}

		if keys[c.Key] {
			return fmt.Errorf("commodity key %q is used more than once", c.Key)
		}
		keys[c.Key] = true
	}

	for i, s := range ds.Studies {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("study #%d has no title", i+1)
		}

		for _, key := range s.Commodities {
			if !keys[key] {
				return fmt.Errorf("study %q refers to unknown commodity %q", s.Title, key)
			}
		}
	}

	return nil
}

func (c Commodity) commodity() types.Commodity {
	return types.Commodity{
		CommodityName:  c.CommodityName,
		Variety:        c.Variety,
		ScientificName: c.ScientificName,
		CoolingMethod:  c.CoolingMethod,
		Climacteric:    c.Climacteric,
	}
}

func (s Study) study() types.Study {
	return types.Study{
		Title:     s.Title,
		Date:      s.Date,
		Source:    s.Source,
		Objective: s.Objective,
	}
}
