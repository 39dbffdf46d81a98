package docx

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"strconv"

	"github.com/beevik/etree"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// EMUPerPixel is the number of English Metric Units in one pixel at 96 DPI.
const EMUPerPixel = 9525

// Image is a handle on an embedded drawing (<w:drawing>).
type Image struct {
	el *etree.Element
}

// Images returns the drawings contained in b, in document order.
func (b Block) Images() []Image {
	if b.el == nil {
		return nil
	}
	var out []Image
	for _, el := range descendants(b.el, b.w, "drawing") {
		out = append(out, Image{el: el})
	}
	return out
}

// HasImage reports whether b contains at least one drawing.
func (b Block) HasImage() bool {
	return b.el != nil && len(descendants(b.el, b.w, "drawing")) > 0
}

// FirstImage returns the first drawing anywhere in the body.
func (d *Document) FirstImage() (Image, bool) {
	found := descendants(d.body, d.w, "drawing")
	if len(found) == 0 {
		return Image{}, false
	}
	return Image{el: found[0]}, true
}

// Element returns the underlying <w:drawing>.
func (img Image) Element() *etree.Element {
	return img.el
}

// Clone returns a detached deep copy of the drawing.
func (img Image) Clone() Image {
	return Image{el: img.el.Copy()}
}

// Inline reports whether the drawing is placed inline (<wp:inline>) rather
// than anchored.
func (img Image) Inline() bool {
	return img.container() != nil && img.container().Tag == "inline"
}

func (img Image) container() *etree.Element {
	for _, child := range img.el.ChildElements() {
		if child.Tag == "inline" || child.Tag == "anchor" {
			return child
		}
	}
	return nil
}

// Size returns the displayed extent in EMUs.
func (img Image) Size() (cx, cy int64, ok bool) {
	c := img.container()
	if c == nil {
		return 0, 0, false
	}
	for _, child := range c.ChildElements() {
		if child.Tag != "extent" {
			continue
		}
		cx, errX := strconv.ParseInt(child.SelectAttrValue("cx", ""), 10, 64)
		cy, errY := strconv.ParseInt(child.SelectAttrValue("cy", ""), 10, 64)
		if errX != nil || errY != nil {
			return 0, 0, false
		}
		return cx, cy, true
	}
	return 0, 0, false
}

// Resize sets the displayed extent, and the picture's own transform extent
// when present, to cx by cy EMUs.
func (img Image) Resize(cx, cy int64) {
	c := img.container()
	if c == nil {
		return
	}
	sx, sy := strconv.FormatInt(cx, 10), strconv.FormatInt(cy, 10)

	var extent *etree.Element
	for _, child := range c.ChildElements() {
		if child.Tag == "extent" {
			extent = child
			break
		}
	}
	if extent == nil {
		extent = etree.NewElement(c.Space + ":extent")
		c.InsertChildAt(0, extent)
	}
	extent.CreateAttr("cx", sx)
	extent.CreateAttr("cy", sy)

	for _, xfrm := range descendantsByTag(c, "xfrm") {
		for _, ext := range xfrm.ChildElements() {
			if ext.Tag == "ext" {
				ext.CreateAttr("cx", sx)
				ext.CreateAttr("cy", sy)
			}
		}
	}
}

// Embed returns the relationship id of the embedded picture data.
func (img Image) Embed() string {
	for _, blip := range descendantsByTag(img.el, "blip") {
		for _, a := range blip.Attr {
			if a.Key == "embed" {
				return a.Value
			}
		}
	}
	return ""
}

// MediaSize decodes the pixel dimensions of the picture referenced by img.
// Decoders for PNG, JPEG, GIF, BMP, TIFF and WebP are registered.
func (d *Document) MediaSize(img Image) (width, height int, err error) {
	id := img.Embed()
	if id == "" {
		return 0, 0, fmt.Errorf("drawing has no embedded picture")
	}
	rel, ok := d.relationship(id)
	if !ok || rel.Type != relTypeImage {
		return 0, 0, fmt.Errorf("relationship %s is not an image", id)
	}
	data, err := d.partData(resolveTarget(rel.Target))
	if err != nil {
		return 0, 0, err
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decoding %s: %w", rel.Target, err)
	}
	return cfg.Width, cfg.Height, nil
}

// descendantsByTag returns every element below el with the given local name,
// whatever its namespace.
func descendantsByTag(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			out = append(out, child)
		}
		out = append(out, descendantsByTag(child, tag)...)
	}
	return out
}

// Remove detaches the drawing from its run. It reports false when the
// drawing was already detached.
func (img Image) Remove() bool {
	if img.el == nil || img.el.Parent() == nil {
		return false
	}
	img.el.Parent().RemoveChild(img.el)
	return true
}
