// Package imaging provides the image codec used by the re-encoder.
//
// The codec turns raw file bytes into an in-memory raster and encodes a raster
// back into the single target format. All pixel work is delegated to
// github.com/disintegration/imaging; this package only selects the format and
// maps failures onto sentinel errors.
//
// # Supported Inputs
//
// Decoding accepts any format registered with the standard image package:
//   - PNG, JPEG, GIF (standard library)
//   - BMP, TIFF (golang.org/x/image, registered by disintegration/imaging)
//   - WebP (golang.org/x/image/webp, lossy and lossless)
//
// # Output
//
// Encoding always produces PNG, independent of the input format or the
// file's extension.
//
// # Error Handling
//
// Decode failures wrap ErrDecode and encode failures wrap ErrEncode, so
// callers can classify them with errors.Is:
//
//	img, err := codec.Decode(data)
//	if errors.Is(err, imaging.ErrDecode) {
//	    // unrecognized or corrupt data
//	}
package imaging
