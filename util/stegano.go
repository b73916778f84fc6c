package util
import (
	"os"
	"strings"
	"path/filepath"
)

// files of folder having one of the extensions (case insensitive), sorted by name.
func ReadFiles( folder string, supportedExtensions []string ) ([]string, error) {
	allFiles, err := os.ReadDir( folder )
	if err != nil {
		return nil, err
	}
	result := []string{}
	for _, f := range allFiles {
		if f.IsDir() {
			continue
		}
		name := strings.ToLower( f.Name() )
		for _, ext := range supportedExtensions {
			if strings.HasSuffix( name, "." + strings.ToLower( ext ) ) == true {
				result = append( result, filepath.Join( folder, f.Name() ) )
				break
			}
		}
	}
	return result, nil
}

/*
 * where the stego version of input goes: outDir/<name><suffix>.<ext>.
 * an empty outDir keeps the input's folder.
 */
func OutputName( input, outDir, suffix, ext string ) string {
	base := filepath.Base( input )
	name := strings.TrimSuffix( base, filepath.Ext( base ) )
	if outDir == "" {
		outDir = filepath.Dir( input )
	}
	return filepath.Join( outDir, name + suffix + "." + strings.TrimPrefix( ext, "." ) )
}
