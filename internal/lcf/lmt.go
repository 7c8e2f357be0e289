package lcf

import (
	"fmt"
	"os"
)

// TreeSignature is the header string of the map tree file.
const TreeSignature = "LcfMapTree"

const (
	chunkMapInfoName   = 0x01
	chunkMapInfoParent = 0x02
	chunkMapInfoIndent = 0x03
)

// LoadMapTree reads and decodes a map tree file.
func LoadMapTree(path string) (*MapTree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tree, err := ParseMapTree(data)
	if err != nil {
		return nil, fmt.Errorf("invalid map tree %s: %w", path, err)
	}
	return tree, nil
}

// ParseMapTree decodes the bytes of a map tree. Only the map list is read;
// the tree order and start position that follow it are ignored.
func ParseMapTree(data []byte) (*MapTree, error) {
	r := newReader(data)
	if err := r.header(TreeSignature); err != nil {
		return nil, err
	}

	tree := &MapTree{}
	err := r.array(func(id int, r *reader) error {
		info := MapInfo{ID: id}
		err := r.chunks(func(c chunk) error {
			var err error
			switch c.id {
			case chunkMapInfoName:
				info.Name = c.data
			case chunkMapInfoParent:
				info.Parent, err = c.intValue()
			case chunkMapInfoIndent:
				info.Indent, err = c.intValue()
			}
			return err
		})
		if err != nil {
			return err
		}
		tree.Maps = append(tree.Maps, info)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}
