package xlsx2csv

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/richardlehane/mscfb"
	"github.com/richardlehane/msoleps"
)

// container identifies the physical format of a workbook file.
type container int

const (
	containerUnknown container = iota
	containerOOXML
	containerEncrypted
	containerLegacyBIFF
	containerBinary
)

func (c container) String() string {
	switch c {
	case containerOOXML:
		return "ooxml"
	case containerEncrypted:
		return "encrypted ooxml"
	case containerLegacyBIFF:
		return "legacy .xls (BIFF)"
	case containerBinary:
		return "binary .xlsb"
	default:
		return "unknown"
	}
}

var (
	compoundFileMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	zipMagic          = []byte("PK\x03\x04")
)

// detectContainer inspects the file header of path and, for OLE compound
// files and zip archives, the entries they hold.
func detectContainer(path string, logger *slog.Logger) (container, error) {
	f, err := os.Open(path)
	if err != nil {
		return containerUnknown, err
	}
	defer f.Close()

	magic := make([]byte, len(compoundFileMagic))
	if _, err := io.ReadFull(f, magic); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return containerUnknown, nil
		}
		return containerUnknown, err
	}

	switch {
	case bytes.Equal(magic, compoundFileMagic):
		return inspectCompoundFile(f, logger), nil
	case bytes.HasPrefix(magic, zipMagic):
		return inspectZip(path), nil
	}
	return containerUnknown, nil
}

// inspectCompoundFile tells legacy BIFF workbooks apart from encrypted OOXML
// packages, which share the OLE compound file format.
func inspectCompoundFile(f io.ReaderAt, logger *slog.Logger) container {
	doc, err := mscfb.New(f)
	if err != nil {
		logger.Debug("compound file unreadable", "error", err)
		return containerUnknown
	}

	kind := containerUnknown
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		switch {
		case entry.Name == "Workbook" || entry.Name == "Book":
			kind = containerLegacyBIFF
		case entry.Name == "EncryptedPackage":
			if kind == containerUnknown {
				kind = containerEncrypted
			}
		case strings.HasSuffix(entry.Name, "SummaryInformation") && !strings.Contains(entry.Name, "Document"):
			logSummaryInformation(entry, logger)
		}
	}
	return kind
}

func logSummaryInformation(r io.Reader, logger *slog.Logger) {
	props := msoleps.New()
	if err := props.Reset(r); err != nil {
		logger.Debug("summary information unreadable", "error", err)
		return
	}
	for _, prop := range props.Property {
		logger.Debug("workbook property", "name", prop.Name, "value", fmt.Sprint(prop))
	}
}

// inspectZip reports containerBinary for .xlsb packages, which carry a binary
// workbook part instead of workbook.xml.
func inspectZip(path string) container {
	r, err := zip.OpenReader(path)
	if err != nil {
		return containerUnknown
	}
	defer r.Close()

	for _, f := range r.File {
		if strings.EqualFold(f.Name, "xl/workbook.bin") {
			return containerBinary
		}
	}
	return containerOOXML
}

// missingReader returns a MissingDependencyError for containers no reader in
// this build can open, or nil.
func missingReader(c container) error {
	switch c {
	case containerLegacyBIFF, containerBinary:
		return &MissingDependencyError{
			Format: c.String(),
			Remedy: "re-save the workbook as .xlsx and convert again",
		}
	}
	return nil
}
