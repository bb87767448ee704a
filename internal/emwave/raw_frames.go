package emwave

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
	"gonum.org/v1/gonum/mat"
)

// WriteRawFrames writes the fields of every frame as little-endian binary:
//
//	int32 frames, int32 mediums, int32 points
//	float64[points] positions
//	per frame: float64 time, then per medium: float64[3*points] electric, float64[3*points] magnetic
//
// Field matrices are stored row by row (x, y, z).
func WriteRawFrames(w io.Writer, a *Animation, frames []*Frame) error {
	n := len(a.Positions)
	for _, v := range []int{len(frames), len(a.Mediums), n} {
		if err := binary.Write(w, binary.LittleEndian, int32(v)); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.LittleEndian, a.Positions); err != nil {
		return err
	}
	for _, f := range frames {
		if len(f.Snapshots) != len(a.Mediums) {
			return fmt.Errorf("frame %d has %d snapshots, expected %d", f.Index, len(f.Snapshots), len(a.Mediums))
		}
		if err := binary.Write(w, binary.LittleEndian, f.Time); err != nil {
			return err
		}
		for _, s := range f.Snapshots {
			for _, m := range []*mat.Dense{s.electric, s.magnetic} {
				for row := 0; row < 3; row++ {
					if err := binary.Write(w, binary.LittleEndian, m.RawRowView(row)); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// SaveRawFrames writes WriteRawFrames output to path, creating parent directories.
func SaveRawFrames(path string, a *Animation, frames []*Frame) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := WriteRawFrames(w, a, frames); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_ = f.Sync()
	return nil
}

// FieldData is the electric and magnetic field of one medium in one frame.
type FieldData struct {
	Medium   string    `json:"medium"`
	Electric [3][]Real `json:"electric"`
	Magnetic [3][]Real `json:"magnetic"`
}

type FrameData struct {
	Index  int         `json:"index"`
	Time   Real        `json:"time"`
	Fields []FieldData `json:"fields"`
}

// FramesDocument is the self-describing export of a whole animation.
type FramesDocument struct {
	FPS          int         `json:"fps"`
	Wavelength   Real        `json:"wavelength"`
	Amplitude    Real        `json:"amplitude"`
	Phase        Real        `json:"phase"`
	Polarization string      `json:"polarization"`
	Mediums      []string    `json:"mediums"`
	Positions    []Real      `json:"positions"`
	Frames       []FrameData `json:"frames"`
}

func NewFramesDocument(a *Animation, frames []*Frame) *FramesDocument {
	doc := &FramesDocument{
		FPS:          a.FPS,
		Wavelength:   a.Wave.Wavelength,
		Amplitude:    a.Wave.Amplitude,
		Phase:        a.Wave.Phase,
		Polarization: a.Wave.Polarization.String(),
		Positions:    a.Positions,
		Frames:       make([]FrameData, len(frames)),
	}
	for _, m := range a.Mediums {
		doc.Mediums = append(doc.Mediums, m.Name())
	}
	for i, f := range frames {
		fd := FrameData{Index: f.Index, Time: f.Time, Fields: make([]FieldData, len(f.Snapshots))}
		for j, s := range f.Snapshots {
			d := s.Data()
			fd.Fields[j] = FieldData{Medium: a.Mediums[j].Name(), Electric: d.Electric, Magnetic: d.Magnetic}
		}
		doc.Frames[i] = fd
	}
	return doc
}

// EncodeMsgPack writes v as MessagePack, keyed by json struct tags.
func EncodeMsgPack(w io.Writer, v any) error {
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json")
	return encoder.Encode(v)
}

// SaveMsgPackFrames writes the FramesDocument of the animation to path.
func SaveMsgPackFrames(path string, a *Animation, frames []*Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := EncodeMsgPack(w, NewFramesDocument(a, frames)); err != nil {
		return err
	}
	return w.Flush()
}
