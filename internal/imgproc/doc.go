// Package imgproc provides the pixel primitives used by the decode
// pipeline and the stress harness: luminance conversion, channel
// extraction, thresholding, contrast/brightness adjustment, blur,
// resampling and sharpening.
//
// All functions are pure: they never mutate their input and are safe
// for concurrent use. Color frames are *image.NRGBA (the native type
// of github.com/disintegration/imaging); single-channel luma frames
// are *image.Gray.
package imgproc
