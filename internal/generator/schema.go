package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"mimir_backend/internal/model"
	"strings"
	"unicode/utf8"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// MinLessonLength 课程正文去空白后的最少字符数
const MinLessonLength = 100

const syllabusSchemaJSON = `{
  "type": "object",
  "required": ["days"],
  "properties": {
    "days": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["day", "title", "description", "topics"],
        "properties": {
          "day": {"type": "integer", "minimum": 1},
          "title": {"type": "string", "minLength": 1},
          "description": {"type": "string", "minLength": 1},
          "topics": {
            "type": "array",
            "minItems": 1,
            "items": {"type": "string"}
          }
        }
      }
    }
  }
}`

const activitiesSchemaJSON = `{
  "type": "array",
  "minItems": 4,
  "maxItems": 4,
  "items": {
    "type": "object",
    "required": ["question", "answer"],
    "properties": {
      "question": {"type": "string", "minLength": 1},
      "answer": {"type": "string", "minLength": 1}
    }
  }
}`

var (
	syllabusSchema   = mustCompile("mimir://schemas/syllabus.json", syllabusSchemaJSON)
	activitiesSchema = mustCompile("mimir://schemas/activities.json", activitiesSchemaJSON)
)

func mustCompile(url, src string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(src))
	if err != nil {
		panic(fmt.Sprintf("parse schema %s: %v", url, err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", url, err))
	}
	sch, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", url, err))
	}
	return sch
}

// ActivityDraft 模型生成的一道练习
type ActivityDraft struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ParseSyllabus 去围栏、解析并校验大纲
func ParseSyllabus(raw string) (*model.Syllabus, error) {
	var syllabus model.Syllabus
	if err := parseAndValidate(raw, syllabusSchema, &syllabus); err != nil {
		return nil, err
	}
	return &syllabus, nil
}

// ValidateSyllabus 校验调用方直接提交的大纲
func ValidateSyllabus(s model.Syllabus) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = ParseSyllabus(string(data))
	return err
}

// ParseActivities 去围栏、解析并校验练习，成功时恰好4条
func ParseActivities(raw string) ([]ActivityDraft, error) {
	var drafts []ActivityDraft
	if err := parseAndValidate(raw, activitiesSchema, &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

// ValidateLesson 课程正文不做结构校验，只检查长度，返回去空白后的正文
func ValidateLesson(raw string) (string, error) {
	content := strings.TrimSpace(raw)
	if n := utf8.RuneCountInString(content); n < MinLessonLength {
		return "", &SchemaError{Issues: []Issue{{
			Message: fmt.Sprintf("lesson content is too short (%d characters, minimum %d)", n, MinLessonLength),
		}}}
	}
	return content, nil
}

func parseAndValidate(raw string, sch *jsonschema.Schema, out interface{}) error {
	cleaned := StripCodeFence(raw)

	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(cleaned))
	if err != nil {
		return &ParseError{Err: err}
	}

	if err := sch.Validate(inst); err != nil {
		return toSchemaError(err)
	}

	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

func toSchemaError(err error) *SchemaError {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return &SchemaError{Issues: []Issue{{Message: err.Error()}}}
	}

	out := verr.BasicOutput()
	issues := make([]Issue, 0, len(out.Errors))
	for _, unit := range out.Errors {
		if unit.Error == nil {
			continue
		}
		issues = append(issues, Issue{
			Path:    unit.InstanceLocation,
			Message: unit.Error.String(),
		})
	}
	if len(issues) == 0 {
		issues = append(issues, Issue{Path: out.InstanceLocation, Message: verr.Error()})
	}
	return &SchemaError{Issues: issues}
}
