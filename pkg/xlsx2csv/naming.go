package xlsx2csv

import (
	"path/filepath"
	"strings"
)

// sheetNameReplacer maps path separators and drive colons to underscores.
var sheetNameReplacer = strings.NewReplacer("/", "_", `\`, "_", ":", "_")

// SafeSheetName replaces "/", "\" and ":" in a sheet name with "_".
// Other characters are kept as is.
func SafeSheetName(name string) string {
	return sheetNameReplacer.Replace(name)
}

// Stem returns the file name of path without its final extension.
// A name that is only an extension, such as ".data", is returned unchanged.
func Stem(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return base
	}
	return stem
}

// OutputFileName returns "<stem>_<safe sheet name>.csv" for a sheet of inputPath.
func OutputFileName(inputPath, sheetName string) string {
	return Stem(inputPath) + "_" + SafeSheetName(sheetName) + ".csv"
}
