package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// Query is the persona/job pair driving one analysis run.
type Query struct {
	Persona     string `json:"persona"`
	JobToBeDone string `json:"job_to_be_done"`
}

const (
	DefaultPersona = "Research Analyst"
	DefaultJob     = "Analyze the provided documents and extract key insights"
)

// Candidate query files inside the input directory, first readable wins.
var queryFiles = []string{"config.json", "input.json", "persona.json"}

// LoadQuery reads the persona configuration from the input directory. A
// malformed file is logged and treated as absent; with no usable file the
// query falls back to the PERSONA / JOB_DESCRIPTION environment variables and
// finally to the built-in defaults. Missing fields are filled the same way.
func LoadQuery(inputDir string) Query {
	var q Query
	for _, name := range queryFiles {
		data, err := os.ReadFile(filepath.Join(inputDir, name))
		if err != nil {
			continue
		}
		if err := json.Unmarshal(data, &q); err != nil {
			log.Printf("config: ignoring malformed %s: %v", name, err)
			q = Query{}
			continue
		}
		break
	}

	if q.Persona == "" {
		q.Persona = envOr("PERSONA", DefaultPersona)
	}
	if q.JobToBeDone == "" {
		q.JobToBeDone = envOr("JOB_DESCRIPTION", DefaultJob)
	}
	return q
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
