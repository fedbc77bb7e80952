package corpus

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jatucker/sitescan/internal/proposal"
)

// AppendPublication prepends an approved entry to publications.yml
// (the list is ordered most recent first). The file is rewritten
// wholesale; the new content is assembled in memory before any write.
func AppendPublication(path string, entry *proposal.PublicationEntry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading publications: %w", err)
	}

	var existing []yaml.Node
	if err := yaml.Unmarshal(data, &existing); err != nil {
		return fmt.Errorf("parsing publications: %w", err)
	}

	var entryNode yaml.Node
	if err := entryNode.Encode(entry); err != nil {
		return fmt.Errorf("encoding entry: %w", err)
	}

	updated := append([]yaml.Node{entryNode}, existing...)
	out, err := marshalYAML(updated)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}

// WriteCommentary writes a new commentary markdown file consisting of
// a YAML front matter block. Returns the path of the created file.
func WriteCommentary(dir string, entry *proposal.CommentaryEntry) (string, error) {
	fm, err := marshalYAML(entry)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(fm)
	buf.WriteString("---\n")

	path := filepath.Join(dir, proposal.CommentaryFilename(entry.Date, entry.Title))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("writing commentary: %w", err)
	}
	return path, nil
}

// AppendMedia prepends a media mention to the media.press list inside
// site_content.yml. The rest of the document is preserved node-for-node
// so unrelated site configuration keeps its key order.
func AppendMedia(path string, entry *proposal.MediaEntry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading site content: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing site content: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return fmt.Errorf("site content: unexpected document structure")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("site content: top level is not a mapping")
	}

	press := mappingValue(mappingValue(root, "media", yaml.MappingNode), "press", yaml.SequenceNode)

	var entryNode yaml.Node
	if err := entryNode.Encode(entry); err != nil {
		return fmt.Errorf("encoding entry: %w", err)
	}
	press.Content = append([]*yaml.Node{&entryNode}, press.Content...)

	out, err := marshalYAML(&doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}

// mappingValue returns the value node for key in a mapping, creating
// an empty node of the wanted kind when the key is absent.
func mappingValue(m *yaml.Node, key string, kind yaml.Kind) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
	valNode := &yaml.Node{Kind: kind}
	if kind == yaml.SequenceNode {
		valNode.Tag = "!!seq"
	} else {
		valNode.Tag = "!!map"
	}
	m.Content = append(m.Content, keyNode, valNode)
	return valNode
}

// marshalYAML encodes with 2-space indentation, matching the existing
// hand-edited store files.
func marshalYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return buf.Bytes(), nil
}
