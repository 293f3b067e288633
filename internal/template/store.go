package template

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// rootKey is the single top-level mapping key of a template file.
const rootKey = "resume"

var (
	// ErrFieldExists is returned when adding a label that is already stored.
	ErrFieldExists = errors.New("field already exists")
	// ErrFieldNotFound is returned when operating on an unknown label.
	ErrFieldNotFound = errors.New("field not found")
)

// Field is one stored label/value pair.
type Field struct {
	Label string
	Value string
}

// PresetLabels seeds a fresh template file with the common resume
// categories so the user starts from a fill-in-the-blanks skeleton.
var PresetLabels = []string{
	"姓名",
	"身份证",
	"电话",
	"手机",
	"邮箱",
	"地址",
	"邮编",
	"毕业院校",
	"专业",
	"工作经历",
	"技能",
	"学历",
	"出生日期",
	"性别",
	"民族",
	"政治面貌",
	"婚姻状况",
	"籍贯",
	"现居住地",
	"期望薪资",
	"求职意向",
	"自我评价",
	"项目经验",
	"获奖情况",
}

// Store owns the persistent label→value mapping. Labels are unique; field
// order is insertion order and survives save/load round trips.
//
// A Store is not safe for concurrent use. Callers that hand data to the
// matcher must do so through Fields, which returns an independent snapshot.
type Store struct {
	path   string
	fields []Field
	index  map[string]int
}

// Open loads the template file at path, creating it from PresetLabels
// (with empty values) if it does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{
		path:  path,
		index: make(map[string]int),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s.seed()

		err = s.save()
		if err != nil {
			return nil, err
		}

		return s, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s: %w", path, err)
	}

	err = s.parse(data)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// seed fills the store with the preset labels, all empty.
func (s *Store) seed() {
	for _, label := range PresetLabels {
		s.index[label] = len(s.fields)
		s.fields = append(s.fields, Field{Label: label})
	}
}

// parse decodes a template file. Decoding goes through yaml.Node rather
// than a map so the on-disk field order is kept.
func (s *Store) parse(data []byte) error {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return fmt.Errorf("failed to parse template YAML: %w", err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil // empty file, empty store
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("template file %s: expected mapping at top level", s.path)
	}

	var body *yaml.Node

	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == rootKey {
			body = root.Content[i+1]

			break
		}
	}

	if body == nil || body.Kind != yaml.MappingNode {
		return fmt.Errorf("template file %s: missing %q mapping", s.path, rootKey)
	}

	for i := 0; i+1 < len(body.Content); i += 2 {
		keyNode := body.Content[i]
		valNode := body.Content[i+1]

		var value string

		err = valNode.Decode(&value)
		if err != nil {
			return fmt.Errorf("template field %q: %w", keyNode.Value, err)
		}

		label := keyNode.Value
		if _, ok := s.index[label]; ok {
			continue // duplicate label, first occurrence wins
		}

		s.index[label] = len(s.fields)
		s.fields = append(s.fields, Field{Label: label, Value: value})
	}

	return nil
}

// save writes the store back to disk, preserving field order and using
// literal blocks for multi-line values.
func (s *Store) save() error {
	body := &yaml.Node{Kind: yaml.MappingNode}

	for _, f := range s.fields {
		var key, val yaml.Node

		key.SetString(f.Label)
		val.SetString(f.Value)

		body.Content = append(body.Content, &key, &val)
	}

	var rootLabel yaml.Node

	rootLabel.SetString(rootKey)

	root := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{&rootLabel, body},
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return fmt.Errorf("failed to marshal template: %w", err)
	}

	err = os.MkdirAll(filepath.Dir(s.path), dirPerm)
	if err != nil {
		return fmt.Errorf("creating template directory: %w", err)
	}

	err = os.WriteFile(s.path, data, filePerm)
	if err != nil {
		return fmt.Errorf("failed to write template file %s: %w", s.path, err)
	}

	return nil
}

// Fields returns an independent snapshot of all fields in insertion order.
// Mutating the returned slice does not affect the store.
func (s *Store) Fields() []Field {
	snapshot := make([]Field, len(s.fields))
	copy(snapshot, s.fields)

	return snapshot
}

// Labels returns all labels in insertion order.
func (s *Store) Labels() []string {
	labels := make([]string, len(s.fields))
	for i, f := range s.fields {
		labels[i] = f.Label
	}

	return labels
}

// Get returns the value stored under label.
func (s *Store) Get(label string) (string, bool) {
	i, ok := s.index[label]
	if !ok {
		return "", false
	}

	return s.fields[i].Value, true
}

// Set stores value under label, appending the field if it is new.
func (s *Store) Set(label, value string) error {
	i, ok := s.index[label]
	if ok {
		s.fields[i].Value = value
	} else {
		s.index[label] = len(s.fields)
		s.fields = append(s.fields, Field{Label: label, Value: value})
	}

	return s.save()
}

// Add stores a new field. It fails with ErrFieldExists if the label is
// already present.
func (s *Store) Add(label, value string) error {
	if _, ok := s.index[label]; ok {
		return fmt.Errorf("%w: %s", ErrFieldExists, label)
	}

	s.index[label] = len(s.fields)
	s.fields = append(s.fields, Field{Label: label, Value: value})

	return s.save()
}

// Delete removes the field stored under label.
func (s *Store) Delete(label string) error {
	i, ok := s.index[label]
	if !ok {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, label)
	}

	s.fields = append(s.fields[:i], s.fields[i+1:]...)
	s.rebuildIndex()

	return s.save()
}

// Rename replaces the field stored under oldLabel with newLabel/value.
// When the label actually changes the field moves to the end, matching
// delete-then-add semantics.
func (s *Store) Rename(oldLabel, newLabel, value string) error {
	i, ok := s.index[oldLabel]
	if !ok {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, oldLabel)
	}

	if oldLabel == newLabel {
		s.fields[i].Value = value

		return s.save()
	}

	s.fields = append(s.fields[:i], s.fields[i+1:]...)
	s.rebuildIndex()

	j, ok := s.index[newLabel]
	if ok {
		// The new label already exists elsewhere; keep its position.
		s.fields[j].Value = value
	} else {
		s.index[newLabel] = len(s.fields)
		s.fields = append(s.fields, Field{Label: newLabel, Value: value})
	}

	return s.save()
}

// Len returns the number of stored fields.
func (s *Store) Len() int {
	return len(s.fields)
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) rebuildIndex() {
	s.index = make(map[string]int, len(s.fields))
	for i, f := range s.fields {
		s.index[f.Label] = i
	}
}
