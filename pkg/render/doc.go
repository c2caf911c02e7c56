// Package render draws a page's zone layout as an SVG document.
//
// The renderer works entirely in millimeters: the SVG viewBox is the A4
// page (210x297mm), so zone rectangles map 1:1 to the engine's geometry
// and the output prints at true size. Each zone is drawn at its resolved
// vertical span with a type label and height readout; unoccupied budget
// is left as whitespace inside the page frame.
//
//	svg := render.SVG(page, render.WithTitle("invoice"))
//	os.WriteFile("page.svg", svg, 0644)
package render
