package lcf

import (
	"fmt"
	"os"
)

// MapSignature is the header string of every map unit file.
const MapSignature = "LcfMapUnit"

// Chunk ids of the structures decoded from a map unit.
const (
	chunkMapEvents = 0x51

	chunkEventName  = 0x01
	chunkEventX     = 0x02
	chunkEventY     = 0x03
	chunkEventPages = 0x05

	chunkPageGraphicFile  = 0x15
	chunkPageGraphicIndex = 0x16
	chunkPageTrigger      = 0x21
	chunkPageCommands     = 0x34
)

// LoadMap reads and decodes a map unit file.
func LoadMap(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := ParseMap(data)
	if err != nil {
		return nil, fmt.Errorf("invalid map file %s: %w", path, err)
	}
	return doc, nil
}

// ParseMap decodes the bytes of a map unit.
func ParseMap(data []byte) (*Document, error) {
	r := newReader(data)
	if err := r.header(MapSignature); err != nil {
		return nil, err
	}

	doc := &Document{}
	err := r.chunks(func(c chunk) error {
		if c.id != chunkMapEvents {
			return nil
		}
		events, err := parseEvents(c.reader())
		if err != nil {
			return err
		}
		doc.Events = events
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// array reads an element count followed by count (id, chunks...) records.
func (r *reader) array(fn func(id int, r *reader) error) error {
	count, err := r.size()
	if err != nil {
		return err
	}
	for range count {
		id, err := r.int()
		if err != nil {
			return err
		}
		if err := fn(id, r); err != nil {
			return err
		}
	}
	return nil
}

func parseEvents(r *reader) ([]Event, error) {
	var events []Event
	err := r.array(func(id int, r *reader) error {
		ev := Event{ID: id}
		err := r.chunks(func(c chunk) error {
			var err error
			switch c.id {
			case chunkEventName:
				ev.Name = c.data
			case chunkEventX:
				ev.X, err = c.intValue()
			case chunkEventY:
				ev.Y, err = c.intValue()
			case chunkEventPages:
				ev.Pages, err = parsePages(c.reader())
			}
			return err
		})
		if err != nil {
			return err
		}
		events = append(events, ev)
		return nil
	})
	return events, err
}

func parsePages(r *reader) ([]Page, error) {
	var pages []Page
	err := r.array(func(_ int, r *reader) error {
		var page Page
		err := r.chunks(func(c chunk) error {
			var err error
			switch c.id {
			case chunkPageGraphicFile:
				page.Graphic.File = c.data
			case chunkPageGraphicIndex:
				page.Graphic.Index, err = c.intValue()
			case chunkPageTrigger:
				var t int
				t, err = c.intValue()
				page.Trigger = Trigger(t)
			case chunkPageCommands:
				page.Commands, err = parseCommands(c.reader())
			}
			return err
		})
		if err != nil {
			return err
		}
		pages = append(pages, page)
		return nil
	})
	return pages, err
}

// parseCommands decodes an event command list. The list is terminated by an
// all-zero record which is not returned.
func parseCommands(r *reader) ([]Command, error) {
	var cmds []Command
	for !r.eof() {
		code, err := r.int()
		if err != nil {
			return nil, err
		}
		indent, err := r.int()
		if err != nil {
			return nil, err
		}
		str, err := r.str()
		if err != nil {
			return nil, err
		}
		n, err := r.size()
		if err != nil {
			return nil, err
		}
		params := make([]int32, n)
		for i := range params {
			v, err := r.int()
			if err != nil {
				return nil, err
			}
			params[i] = int32(v) //nolint:gosec // r.int yields 32-bit values
		}
		if code == 0 {
			continue
		}
		cmds = append(cmds, Command{Code: Opcode(code), Indent: indent, String: str, Params: params})
	}
	return cmds, nil
}
