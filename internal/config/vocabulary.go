package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talentops/resume-intake/internal/core/extract"
)

// vocabularyFile mirrors the YAML override format. Any list present in the
// file replaces the built-in one wholesale; absent lists keep their defaults,
// so a deployment can swap the skill vocabulary without restating the rest.
type vocabularyFile struct {
	Skills            []string `yaml:"skills"`
	SectionHeaders    []string `yaml:"section_headers"`
	Connectors        []string `yaml:"connectors"`
	FilenameStopWords []string `yaml:"filename_stop_words"`
	SubjectKeywords   []string `yaml:"subject_keywords"`
	JobTitles         []string `yaml:"job_titles"`
	ExperienceHeaders []string `yaml:"experience_headers"`
	ExperienceEnders  []string `yaml:"experience_enders"`
}

// LoadVocabulary builds the extraction vocabulary, applying overrides from
// the YAML file at path when path is non-empty.
func LoadVocabulary(path string) (extract.Vocabulary, error) {
	vocab := extract.DefaultVocabulary()
	if path == "" {
		return vocab, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return extract.Vocabulary{}, fmt.Errorf("read vocabulary file: %w", err)
	}
	var file vocabularyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return extract.Vocabulary{}, fmt.Errorf("parse vocabulary file: %w", err)
	}

	if len(file.Skills) > 0 {
		vocab.Skills = file.Skills
	}
	if len(file.SectionHeaders) > 0 {
		vocab.SectionHeaders = file.SectionHeaders
	}
	if len(file.Connectors) > 0 {
		vocab.Connectors = file.Connectors
	}
	if len(file.FilenameStopWords) > 0 {
		vocab.FilenameStopWords = file.FilenameStopWords
	}
	if len(file.SubjectKeywords) > 0 {
		vocab.SubjectKeywords = file.SubjectKeywords
	}
	if len(file.JobTitles) > 0 {
		vocab.JobTitles = file.JobTitles
	}
	if len(file.ExperienceHeaders) > 0 {
		vocab.ExperienceHeaders = file.ExperienceHeaders
	}
	if len(file.ExperienceEnders) > 0 {
		vocab.ExperienceEnders = file.ExperienceEnders
	}
	return vocab, nil
}
