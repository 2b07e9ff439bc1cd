// Package imaging provides the pixel buffer and the stateless raster operations
// used by the editor.
//
// This package implements the owned RGBA buffer that every editing operation
// reads and writes, the view-to-image coordinate mapping, and the destructive
// effects (brightness, grayscale, crop, line and text compositing). It also
// hosts the file service that decodes files into buffers and encodes buffers
// back to PNG or JPEG.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based with the origin at the
// top-left corner. X increases rightward and Y increases downward. Rectangles
// follow image.Rectangle conventions: Min is inclusive, Max is exclusive.
//
// # Pixel Format
//
// A Buffer always stores 8-bit non-premultiplied RGBA (image.NRGBA) anchored at
// (0,0). Decoded images in any other color model are normalized on the way in,
// so alpha is always representable and effects can treat it as a pass-through
// channel.
//
// # Ownership
//
// Buffers are never shared implicitly. Copy produces independent backing
// storage; Crop and Grayscale return new buffers; Brightness, DrawLine and
// DrawText mutate their argument in place.
//
// # Error Handling
//
// Functions return sentinel errors that callers can test with errors.Is:
//   - ErrInvalidBuffer for zero or negative dimensions
//   - ErrDegenerateSelection for zero-area crop rectangles
//   - ErrEmptyText for blank text overlays
//   - ErrUnreadableFile, ErrWriteError and ErrUnsupportedFormat at the file boundary
package imaging
