package model

// DefaultOutputTemplate names downloaded files after the media title
const DefaultOutputTemplate = "%(title)s.%(ext)s"

// TransferRequest describes one engine download
type TransferRequest struct {
	URL            string
	Expression     SelectionExpression
	Destination    string // directory
	OutputTemplate string // file name template inside Destination
}

// Template returns the output template, falling back to the default
func (r TransferRequest) Template() string {
	if r.OutputTemplate == "" {
		return DefaultOutputTemplate
	}
	return r.OutputTemplate
}

// TransferResult is what the engine reports after a successful download
type TransferResult struct {
	Filename string // final path if the engine reported it
	Title    string
}
