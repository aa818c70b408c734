// Package ocr implements the driven OCREngine port by shelling out to
// external binaries: pdftoppm rasterises PDF pages to images, then
// tesseract recognises each page. The engines are deliberately behind
// a small interface so a native-library or cloud implementation can be
// swapped in without touching callers.
package ocr
