package xlsx2csv

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"
)

// Sector markers of the compound file format.
const (
	cfbFreeSect   = 0xFFFFFFFF
	cfbEndOfChain = 0xFFFFFFFE
	cfbFATSect    = 0xFFFFFFFD
	cfbNoStream   = 0xFFFFFFFF

	cfbSectorSize = 512
	cfbCutoff     = 4096
)

type cfbStream struct {
	name string
	data []byte
}

// buildCompoundFile lays out a version 3 compound file holding streams as
// children of the root storage. Every stream is padded to the mini stream
// cutoff so it lives in regular sectors and no mini FAT is needed.
func buildCompoundFile(streams ...cfbStream) []byte {
	const sectorsPerStream = cfbCutoff / cfbSectorSize

	// sector 0: FAT, sector 1: directory, then the streams back to back
	fat := make([]uint32, cfbSectorSize/4)
	for i := range fat {
		fat[i] = cfbFreeSect
	}
	fat[0] = cfbFATSect
	fat[1] = cfbEndOfChain

	starts := make([]uint32, len(streams))
	next := uint32(2)
	for i := range streams {
		starts[i] = next
		for s := uint32(0); s < sectorsPerStream; s++ {
			if s == sectorsPerStream-1 {
				fat[next+s] = cfbEndOfChain
			} else {
				fat[next+s] = next + s + 1
			}
		}
		next += sectorsPerStream
	}

	var buf bytes.Buffer
	le := binary.LittleEndian

	// header
	header := make([]byte, cfbSectorSize)
	copy(header, compoundFileMagic)
	le.PutUint16(header[24:], 0x003E)
	le.PutUint16(header[26:], 0x0003)
	le.PutUint16(header[28:], 0xFFFE)
	le.PutUint16(header[30:], 9)
	le.PutUint16(header[32:], 6)
	le.PutUint32(header[44:], 1) // FAT sectors
	le.PutUint32(header[48:], 1) // first directory sector
	le.PutUint32(header[56:], cfbCutoff)
	le.PutUint32(header[60:], cfbEndOfChain)
	le.PutUint32(header[68:], cfbEndOfChain)
	le.PutUint32(header[76:], 0)
	for off := 80; off < cfbSectorSize; off += 4 {
		le.PutUint32(header[off:], cfbFreeSect)
	}
	buf.Write(header)

	binary.Write(&buf, le, fat)

	dir := make([]byte, cfbSectorSize)
	root := cfbDirEntry("Root Entry", 5, cfbEndOfChain, 0)
	if len(streams) > 0 {
		le.PutUint32(root[76:], 1)
	}
	copy(dir, root)
	for i, st := range streams {
		entry := cfbDirEntry(st.name, 2, starts[i], cfbCutoff)
		if i+1 < len(streams) {
			le.PutUint32(entry[72:], uint32(i+2))
		}
		copy(dir[(i+1)*128:], entry)
	}
	for i := len(streams) + 1; i < cfbSectorSize/128; i++ {
		empty := make([]byte, 128)
		le.PutUint32(empty[68:], cfbNoStream)
		le.PutUint32(empty[72:], cfbNoStream)
		le.PutUint32(empty[76:], cfbNoStream)
		copy(dir[i*128:], empty)
	}
	buf.Write(dir)

	for _, st := range streams {
		data := make([]byte, cfbCutoff)
		copy(data, st.data)
		buf.Write(data)
	}

	return buf.Bytes()
}

func cfbDirEntry(name string, objectType byte, start uint32, size uint64) []byte {
	le := binary.LittleEndian
	entry := make([]byte, 128)

	units := utf16.Encode([]rune(name))
	for i, u := range units {
		le.PutUint16(entry[i*2:], u)
	}
	le.PutUint16(entry[64:], uint16((len(units)+1)*2))
	entry[66] = objectType
	entry[67] = 1 // black
	le.PutUint32(entry[68:], cfbNoStream)
	le.PutUint32(entry[72:], cfbNoStream)
	le.PutUint32(entry[76:], cfbNoStream)
	le.PutUint32(entry[116:], start)
	le.PutUint64(entry[120:], size)
	return entry
}

// summaryInformation encodes a SummaryInformation property set with a UTF-8
// code page and a Title property.
func summaryInformation(title string) []byte {
	le := binary.LittleEndian
	fmtid := []byte{
		0xE0, 0x85, 0x9F, 0xF2, 0xF9, 0x4F, 0x68, 0x10,
		0xAB, 0x91, 0x08, 0x00, 0x2B, 0x27, 0xB3, 0xD9,
	}

	titleBytes := append([]byte(title), 0)
	padded := (len(titleBytes) + 3) &^ 3

	var set bytes.Buffer
	const codePageOffset = 8 + 2*8
	titleOffset := codePageOffset + 8
	size := titleOffset + 8 + padded
	binary.Write(&set, le, uint32(size))
	binary.Write(&set, le, uint32(2))
	binary.Write(&set, le, [4]uint32{1, codePageOffset, 2, uint32(titleOffset)})
	// VT_I2 code page 65001
	binary.Write(&set, le, uint16(0x0002))
	binary.Write(&set, le, uint16(0))
	binary.Write(&set, le, uint16(65001))
	binary.Write(&set, le, uint16(0))
	// VT_LPSTR title
	binary.Write(&set, le, uint16(0x001E))
	binary.Write(&set, le, uint16(0))
	binary.Write(&set, le, uint32(len(titleBytes)))
	set.Write(titleBytes)
	set.Write(make([]byte, padded-len(titleBytes)))

	var stream bytes.Buffer
	binary.Write(&stream, le, uint16(0xFFFE))
	binary.Write(&stream, le, uint16(0))
	binary.Write(&stream, le, uint32(0x00020006))
	stream.Write(make([]byte, 16))
	binary.Write(&stream, le, uint32(1))
	stream.Write(fmtid)
	binary.Write(&stream, le, uint32(48))
	stream.Write(set.Bytes())
	return stream.Bytes()
}
