package app

import (
	"strings"

	"github.com/isaac-pipcode/Cat-logo-de-HDs/models"
)

var typeByExt = map[string]string{}

func init() {
	for typ, exts := range map[string][]string{
		models.TypeImagem:     {"jpg", "jpeg", "png", "gif", "webp", "svg", "bmp"},
		models.TypeVideo:      {"mp4", "mkv", "avi", "mov", "webm"},
		models.TypeAudio:      {"mp3", "wav", "flac", "aac", "ogg"},
		models.TypeDocumento:  {"pdf", "doc", "docx", "txt", "md", "xls", "xlsx", "ppt"},
		models.TypeArquivo:    {"zip", "rar", "7z", "tar", "gz"},
		models.TypeExecutavel: {"exe", "msi", "bat", "sh", "bin"},
		models.TypeCodigo:     {"js", "ts", "html", "css", "json", "py", "java"},
	} {
		for _, e := range exts {
			typeByExt[e] = typ
		}
	}
}

// ExtensionOf returns the lowercase extension of a file name, without the
// dot, or "none" when the name has no extension.
func ExtensionOf(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 || i == len(name)-1 {
		return "none"
	}
	return strings.ToLower(name[i+1:])
}

// Classify maps an extension to its type category. Unknown extensions map
// to "outros". Matching is case-insensitive.
func Classify(ext string) string {
	if t, ok := typeByExt[strings.ToLower(ext)]; ok {
		return t
	}
	return models.TypeOutros
}
