// Package qrai validates QR codes embedded in visually complex images
// and scores how reliably real-world scanners will read them.
//
// Decoding runs a progressive, tiered preprocessing pipeline over the
// image — raw luma first, then cheap binarisations, then a parallel
// pool of channel extractions, then a brute-force parameter sweep —
// against two decoder backends (ZXing and quirc lineage). Scoring
// re-runs the decoders on perturbed variants of the image (downscales,
// blurs, contrast reduction) and maps the pass/fail pattern to an
// integer 0-100.
//
//	data, _ := os.ReadFile("qr.png")
//	result, err := qrai.Validate(data)
//	if err != nil {
//		// not an image, too large, or no QR found
//	}
//	fmt.Println(result.Score, *result.Content)
package qrai
