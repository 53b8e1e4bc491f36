// Package sink serializes render-ready documents into output byte
// streams. RenderPDF produces the printable A4 document; RenderJSON
// serializes the document description itself, which doubles as the
// machine-readable contract of the layout engine's output boundary.
package sink
