package assets

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"sort"
	"strings"

	"git.lost.host/meutraa/funkin/internal/game"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Frame is one named rectangle of an atlas image.
type Frame struct {
	Name       string
	X, Y, W, H int
}

type Atlas struct {
	Image  image.Image
	Frames []Frame
}

// Sparrow texture atlas, as exported by Adobe Animate
type textureAtlas struct {
	XMLName     xml.Name     `xml:"TextureAtlas"`
	ImagePath   string       `xml:"imagePath,attr"`
	SubTextures []subTexture `xml:"SubTexture"`
}

type subTexture struct {
	Name   string `xml:"name,attr"`
	X      int    `xml:"x,attr"`
	Y      int    `xml:"y,attr"`
	Width  int    `xml:"width,attr"`
	Height int    `xml:"height,attr"`
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if nil != err {
		return nil, fmt.Errorf("unsupported charset %v: %w", label, err)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

// ParseAtlas reads the frames of a texture atlas document.
func ParseAtlas(r io.Reader) ([]Frame, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charsetReader

	var ta textureAtlas
	if err := decoder.Decode(&ta); nil != err {
		return nil, err
	}
	if len(ta.SubTextures) == 0 {
		return nil, errors.New("atlas has no frames")
	}

	frames := make([]Frame, 0, len(ta.SubTextures))
	for _, st := range ta.SubTextures {
		if st.Width < 0 || st.Height < 0 {
			return nil, fmt.Errorf("frame %q has a negative size", st.Name)
		}
		frames = append(frames, Frame{
			Name: st.Name,
			X:    st.X,
			Y:    st.Y,
			W:    st.Width,
			H:    st.Height,
		})
	}
	return frames, nil
}

// LoadAtlas fetches and decodes an atlas image and its frame list.
func LoadAtlas(imagePath, atlasPath string) (*Atlas, error) {
	data, err := Fetch(atlasPath)
	if nil != err {
		return nil, err
	}
	frames, err := ParseAtlas(bytes.NewReader(data))
	if nil != err {
		return nil, &game.ParseError{Location: atlasPath, Err: err}
	}

	data, err = Fetch(imagePath)
	if nil != err {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if nil != err {
		return nil, &game.ParseError{Location: imagePath, Err: err}
	}

	return &Atlas{Image: img, Frames: frames}, nil
}

// Animation returns the frames whose names start with prefix, ordered by
// name so numbered frames play in sequence.
func (a *Atlas) Animation(prefix string) []Frame {
	var frames []Frame
	for _, f := range a.Frames {
		if strings.HasPrefix(f.Name, prefix) {
			frames = append(frames, f)
		}
	}
	sort.SliceStable(frames, func(i, j int) bool {
		return frames[i].Name < frames[j].Name
	})
	return frames
}
