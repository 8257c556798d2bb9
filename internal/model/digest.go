package model

// FullDigestSeparator joins the directory structure and the file contents
// when copying or saving the combined digest.
const FullDigestSeparator = "\n\nFiles Content:\n\n"

// Digest holds the text extracted from a server-rendered result page.
type Digest struct {
	// Summary is the short ingest report (repo name, file count, token
	// estimate).
	Summary string

	// Tree is the directory-structure listing.
	Tree string

	// Content is the concatenated file contents.
	Content string
}

// Full returns the combined digest: the structural listing and the content
// body joined by the fixed separator label.
func (d Digest) Full() string {
	return d.Tree + FullDigestSeparator + d.Content
}

// Empty reports whether nothing was extracted from the response.
func (d Digest) Empty() bool {
	return d.Summary == "" && d.Tree == "" && d.Content == ""
}
