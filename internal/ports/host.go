package ports

// Event is a host notification consumed by the plugin event loop. The host
// serializes event delivery; handlers never run concurrently.
type Event interface {
	hostEvent()
}

// ActiveDocumentChanged reports the newly active document. An empty path
// means no document is active.
type ActiveDocumentChanged struct {
	Path string
}

// DocumentRenamed reports a single document rename.
type DocumentRenamed struct {
	NewPath string
	OldPath string
}

// FolderRenamed reports a folder rename affecting every document under it.
type FolderRenamed struct {
	NewPath string
	OldPath string
}

// WindowFocused reports that the host window gained input focus.
type WindowFocused struct{}

// WindowBlurred reports that the host window lost input focus.
type WindowBlurred struct{}

func (ActiveDocumentChanged) hostEvent() {}
func (DocumentRenamed) hostEvent()       {}
func (FolderRenamed) hostEvent()         {}
func (WindowFocused) hostEvent()         {}
func (WindowBlurred) hostEvent()         {}
