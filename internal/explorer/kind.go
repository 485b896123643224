package explorer

import (
	"strings"
)

// ObjectKind classifies the content of a file. The numeric values match the
// indexer's wire encoding.
type ObjectKind int

const (
	KindUnknown ObjectKind = iota
	KindDocument
	KindFolder
	KindText
	KindPackage
	KindImage
	KindAudio
	KindVideo
	KindArchive
	KindExecutable
	KindAlias
	KindEncrypted
	KindKey
	KindLink
	KindWebPageArchive
	KindWidget
	KindAlbum
	KindCollection
	KindFont
	KindMesh
	KindCode
	KindDatabase
	KindBook
	KindConfig
	KindDotfile
	KindScreenshot
	KindLabel
)

var kindNames = [...]string{
	KindUnknown:        "Unknown",
	KindDocument:       "Document",
	KindFolder:         "Folder",
	KindText:           "Text",
	KindPackage:        "Package",
	KindImage:          "Image",
	KindAudio:          "Audio",
	KindVideo:          "Video",
	KindArchive:        "Archive",
	KindExecutable:     "Executable",
	KindAlias:          "Alias",
	KindEncrypted:      "Encrypted",
	KindKey:            "Key",
	KindLink:           "Link",
	KindWebPageArchive: "WebPageArchive",
	KindWidget:         "Widget",
	KindAlbum:          "Album",
	KindCollection:     "Collection",
	KindFont:           "Font",
	KindMesh:           "Mesh",
	KindCode:           "Code",
	KindDatabase:       "Database",
	KindBook:           "Book",
	KindConfig:         "Config",
	KindDotfile:        "Dotfile",
	KindScreenshot:     "Screenshot",
	KindLabel:          "Label",
}

// String returns the kind name used by the icon registry.
func (k ObjectKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

var extensionKinds = map[string]ObjectKind{
	// Images
	"png": KindImage, "jpg": KindImage, "jpeg": KindImage, "gif": KindImage,
	"webp": KindImage, "bmp": KindImage, "tif": KindImage, "tiff": KindImage,
	"heic": KindImage, "heif": KindImage, "avif": KindImage, "svg": KindImage,
	// Video
	"mp4": KindVideo, "mov": KindVideo, "mkv": KindVideo, "avi": KindVideo,
	"webm": KindVideo, "m4v": KindVideo,
	// Audio
	"mp3": KindAudio, "wav": KindAudio, "flac": KindAudio, "ogg": KindAudio,
	"m4a": KindAudio, "aac": KindAudio,
	// Documents
	"pdf": KindDocument, "doc": KindDocument, "docx": KindDocument,
	"xls": KindDocument, "xlsx": KindDocument, "ppt": KindDocument,
	"pptx": KindDocument, "odt": KindDocument, "rtf": KindDocument,
	// Text
	"txt": KindText, "md": KindText, "log": KindText, "csv": KindText,
	// Code
	"go": KindCode, "rs": KindCode, "js": KindCode, "ts": KindCode,
	"tsx": KindCode, "jsx": KindCode, "py": KindCode, "c": KindCode,
	"h": KindCode, "cpp": KindCode, "java": KindCode, "rb": KindCode,
	"swift": KindCode, "kt": KindCode, "html": KindCode, "css": KindCode,
	"sh": KindCode,
	// Config
	"json": KindConfig, "yaml": KindConfig, "yml": KindConfig,
	"toml": KindConfig, "ini": KindConfig, "conf": KindConfig, "xml": KindConfig,
	// Archives
	"zip": KindArchive, "tar": KindArchive, "gz": KindArchive, "rar": KindArchive,
	"7z": KindArchive, "xz": KindArchive, "bz2": KindArchive, "zst": KindArchive,
	// Packages and executables
	"deb": KindPackage, "rpm": KindPackage, "apk": KindPackage, "dmg": KindPackage,
	"exe": KindExecutable, "msi": KindExecutable, "app": KindExecutable,
	// Misc
	"db": KindDatabase, "sqlite": KindDatabase, "sqlite3": KindDatabase,
	"epub": KindBook, "mobi": KindBook,
	"ttf": KindFont, "otf": KindFont, "woff": KindFont, "woff2": KindFont,
	"obj": KindMesh, "fbx": KindMesh, "stl": KindMesh, "glb": KindMesh,
	"pem": KindKey, "key": KindKey, "pub": KindKey,
	"gpg": KindEncrypted, "age": KindEncrypted,
	"url": KindLink, "webloc": KindLink,
	"mhtml": KindWebPageArchive, "webarchive": KindWebPageArchive,
}

// KindFromExtension classifies a file by extension. The extension may carry
// a leading dot and any case.
func KindFromExtension(ext string) ObjectKind {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if kind, ok := extensionKinds[ext]; ok {
		return kind
	}
	return KindUnknown
}
