package gateway

import "google.golang.org/genai"

func stringSchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

func stringListSchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: stringSchema()}
}

// alertsSchema - массив из трех сообщений ленты
func alertsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"id":        stringSchema(),
				"title":     stringSchema(),
				"timestamp": stringSchema(),
				"category":  {Type: genai.TypeString, Enum: []string{"URGENT", "UPDATE", "ADVISORY"}},
				"content":   stringSchema(),
			},
			Required: []string{"id", "title", "timestamp", "category", "content"},
		},
	}
}

func locationProfileSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":                 stringSchema(),
			"state":                stringSchema(),
			"district":             stringSchema(),
			"pinCode":              stringSchema(),
			"lat":                  stringSchema(),
			"lng":                  stringSchema(),
			"famousPlaces":         stringListSchema(),
			"population":           stringSchema(),
			"languages":            stringListSchema(),
			"timeZone":             stringSchema(),
			"weatherOverview":      stringSchema(),
			"nearbyHospitals":      stringListSchema(),
			"nearbyPoliceStations": stringListSchema(),
		},
		Required: []string{
			"name", "state", "district", "pinCode", "lat", "lng", "famousPlaces", "population",
			"languages", "timeZone", "weatherOverview", "nearbyHospitals", "nearbyPoliceStations",
		},
	}
}

func incidentAnalysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"severity":        {Type: genai.TypeString, Enum: []string{"Low", "Medium", "High", "Critical"}},
			"summary":         stringSchema(),
			"safetySteps":     stringListSchema(),
			"estimatedImpact": stringSchema(),
		},
		Required: []string{"severity", "summary", "safetySteps", "estimatedImpact"},
	}
}
