package templates

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-docgen/pkg/model"
)

//go:embed definitions/*.yaml
var embeddedDefinitions embed.FS

// DefinitionsFS exposes the built-in template definition files.
func DefinitionsFS() fs.FS {
	sub, err := fs.Sub(embeddedDefinitions, "definitions")
	if err != nil {
		return embeddedDefinitions
	}
	return sub
}

// Definition is the data half of a template: identity, entity hints and intake
// questions. Section schemas are bound to it by id.
type Definition struct {
	ID           string                 `json:"id" yaml:"id"`
	Name         string                 `json:"name" yaml:"name"`
	Category     string                 `json:"category" yaml:"category"`
	Description  string                 `json:"description" yaml:"description"`
	Parties      []string               `json:"parties" yaml:"parties"`
	DateQuestion string                 `json:"dateQuestion" yaml:"dateQuestion"`
	Questions    []model.IntakeQuestion `json:"questions" yaml:"questions"`
}

// LoadDefinitions walks fsys and parses every JSON/YAML definition file.
// Definitions are keyed by id; duplicates are rejected.
func LoadDefinitions(fsys fs.FS) (map[string]Definition, error) {
	out := make(map[string]Definition)
	if fsys == nil {
		return out, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("templates: read %s: %w", path, err)
		}
		def, err := parseDefinition(data, path)
		if err != nil {
			return err
		}
		if _, exists := out[def.ID]; exists {
			return fmt.Errorf("templates: duplicate template %q (file %s)", def.ID, path)
		}
		out[def.ID] = def
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func parseDefinition(data []byte, source string) (Definition, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Definition{}, fmt.Errorf("templates: file %s is empty", source)
	}

	var def Definition
	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &def); err != nil {
			return Definition{}, fmt.Errorf("templates: parse %s: %w", source, err)
		}
	} else if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("templates: parse %s: %w", source, err)
	}

	def.ID = strings.TrimSpace(def.ID)
	if def.ID == "" {
		return Definition{}, fmt.Errorf("templates: file %s defines an empty template id", source)
	}

	seen := make(map[string]struct{}, len(def.Questions))
	for idx, q := range def.Questions {
		id := strings.TrimSpace(q.ID)
		if id == "" {
			return Definition{}, fmt.Errorf("templates: template %q (file %s) question %d has an empty id", def.ID, source, idx)
		}
		if _, dup := seen[id]; dup {
			return Definition{}, fmt.Errorf("templates: template %q (file %s) defines duplicate question %q", def.ID, source, id)
		}
		seen[id] = struct{}{}
		def.Questions[idx].ID = id
		if def.Questions[idx].Type == "" {
			def.Questions[idx].Type = model.QuestionText
		}
	}
	return def, nil
}

// Bind pairs a definition with its section schemas.
func Bind(def Definition, sections []model.SectionSchema) model.TemplateDef {
	return model.TemplateDef{
		ID:             def.ID,
		Name:           def.Name,
		Category:       def.Category,
		Description:    def.Description,
		PartyQuestions: append([]string(nil), def.Parties...),
		DateQuestion:   def.DateQuestion,
		Sections:       append([]model.SectionSchema(nil), sections...),
		Questions:      append([]model.IntakeQuestion(nil), def.Questions...),
	}
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
