package docx

import (
	"fmt"
	"path"
	"strings"

	"github.com/beevik/etree"
)

// Relationship is one entry of word/_rels/document.xml.rels.
type Relationship struct {
	ID     string
	Type   string
	Target string
}

// Relationships returns the main part's relationships in file order.
func (d *Document) Relationships() []Relationship {
	root := d.rels.Root()
	if root == nil {
		return nil
	}
	var out []Relationship
	for _, el := range root.SelectElements("Relationship") {
		out = append(out, Relationship{
			ID:     el.SelectAttrValue("Id", ""),
			Type:   el.SelectAttrValue("Type", ""),
			Target: el.SelectAttrValue("Target", ""),
		})
	}
	return out
}

// relationship looks up a relationship by id.
func (d *Document) relationship(id string) (Relationship, bool) {
	for _, rel := range d.Relationships() {
		if rel.ID == id {
			return rel, true
		}
	}
	return Relationship{}, false
}

// addRelationship registers a new relationship and returns its id.
func (d *Document) addRelationship(relType, target string) string {
	root := d.rels.Root()
	used := make(map[string]bool)
	for _, rel := range d.Relationships() {
		used[rel.ID] = true
	}
	id := ""
	for n := len(used) + 1; ; n++ {
		id = fmt.Sprintf("rId%d", n)
		if !used[id] {
			break
		}
	}
	el := root.CreateElement("Relationship")
	el.CreateAttr("Id", id)
	el.CreateAttr("Type", relType)
	el.CreateAttr("Target", target)
	return id
}

// addOverride registers a content type for a new part.
func (d *Document) addOverride(partName, contentType string) {
	root := d.types.Root()
	want := "/" + strings.TrimPrefix(partName, "/")
	for _, el := range root.SelectElements("Override") {
		if el.SelectAttrValue("PartName", "") == want {
			return
		}
	}
	el := root.CreateElement("Override")
	el.CreateAttr("PartName", want)
	el.CreateAttr("ContentType", contentType)
}

// resolveTarget maps a relationship target of the main part to a package
// part name.
func resolveTarget(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(path.Dir(partDocument), target))
}

// partTree returns the parsed tree of a package part.
func (d *Document) partTree(name string) (*etree.Document, error) {
	pt := d.pkg.get(name)
	if pt == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, name)
	}
	return pt.parse()
}

// partData returns the raw bytes of a package part.
func (d *Document) partData(name string) ([]byte, error) {
	pt := d.pkg.get(name)
	if pt == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, name)
	}
	if pt.tree != nil {
		return pt.tree.WriteToBytes()
	}
	return pt.data, nil
}
