package lcf

import "bytes"

// writer is the inverse of reader. It backs MarshalMap and MarshalMapTree,
// which produce the minimal files the decoder understands.
type writer struct {
	bytes.Buffer
}

func (w *writer) ber(v uint32) {
	var tmp [5]byte
	i := len(tmp) - 1
	tmp[i] = byte(v & 0x7f)
	for v >>= 7; v > 0; v >>= 7 {
		i--
		tmp[i] = byte(v&0x7f) | 0x80
	}
	w.Write(tmp[i:])
}

func (w *writer) int(v int) {
	w.ber(uint32(int32(v))) //nolint:gosec // two's complement on disk
}

func (w *writer) str(b []byte) {
	w.int(len(b))
	w.Write(b)
}

func (w *writer) chunk(id int, data []byte) {
	w.int(id)
	w.str(data)
}

func (w *writer) intChunk(id, v int) {
	var c writer
	c.int(v)
	w.chunk(id, c.Bytes())
}

// MarshalMap encodes a document as a map unit.
func MarshalMap(doc *Document) []byte {
	var events writer
	events.int(len(doc.Events))
	for _, ev := range doc.Events {
		events.int(ev.ID)
		events.chunk(chunkEventName, ev.Name)
		events.intChunk(chunkEventX, ev.X)
		events.intChunk(chunkEventY, ev.Y)
		events.chunk(chunkEventPages, marshalPages(ev.Pages))
		events.int(0)
	}

	var w writer
	w.str([]byte(MapSignature))
	w.chunk(chunkMapEvents, events.Bytes())
	w.int(0)
	return w.Bytes()
}

func marshalPages(pages []Page) []byte {
	var w writer
	w.int(len(pages))
	for i, p := range pages {
		w.int(i + 1)
		w.chunk(chunkPageGraphicFile, p.Graphic.File)
		w.intChunk(chunkPageGraphicIndex, p.Graphic.Index)
		w.intChunk(chunkPageTrigger, int(p.Trigger))
		w.chunk(chunkPageCommands, marshalCommands(p.Commands))
		w.int(0)
	}
	return w.Bytes()
}

func marshalCommands(cmds []Command) []byte {
	var w writer
	for _, c := range cmds {
		w.int(int(c.Code))
		w.int(c.Indent)
		w.str(c.String)
		w.int(len(c.Params))
		for _, p := range c.Params {
			w.int(int(p))
		}
	}
	// terminator record
	w.Write([]byte{0, 0, 0, 0})
	return w.Bytes()
}

// MarshalMapTree encodes a map tree.
func MarshalMapTree(tree *MapTree) []byte {
	var w writer
	w.str([]byte(TreeSignature))
	w.int(len(tree.Maps))
	for _, m := range tree.Maps {
		w.int(m.ID)
		w.chunk(chunkMapInfoName, m.Name)
		w.intChunk(chunkMapInfoParent, m.Parent)
		w.intChunk(chunkMapInfoIndent, m.Indent)
		w.int(0)
	}
	// tree order
	w.int(len(tree.Maps))
	for _, m := range tree.Maps {
		w.int(m.ID)
	}
	return w.Bytes()
}
