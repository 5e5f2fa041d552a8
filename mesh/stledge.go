package mesh

// EdgeCase is a hand-authored ASCII STL document that exercises parser
// tolerance. The contents are static per scenario and deliberately loose
// against the STL ASCII grammar.
type EdgeCase struct {
	Name     string
	Filename string
	Content  string
}

// EdgeCases returns the ASCII STL parser-robustness fixtures: irregular
// whitespace and inline comments, very large coordinate magnitudes, and
// high-precision floats.
func EdgeCases() []EdgeCase {
	return []EdgeCase{
		{
			Name:     "malformed ascii",
			Filename: "test_malformed_ascii.stl",
			Content:  malformedASCIISTL,
		},
		{
			Name:     "large coordinates",
			Filename: "test_large_coordinates.stl",
			Content:  largeCoordinatesSTL,
		},
		{
			Name:     "high precision floats",
			Filename: "test_precision_float.stl",
			Content:  precisionFloatSTL,
		},
	}
}

// Trailing whitespace in the third facet is intentional.
const malformedASCIISTL = "solid malformed_test\n" +
	"  facet normal 0.0 0.0 1.0\n" +
	"    outer loop\n" +
	"      vertex 0.0 0.0 0.0\n" +
	"      vertex 1.0 0.0 0.0\n" +
	"      vertex 0.5 0.866 0.0\n" +
	"    endloop\n" +
	"  endfacet\n" +
	"  \n" +
	"  facet normal 0.577 0.577 0.577\n" +
	"    outer loop\n" +
	"      vertex 1.0 0.0 0.0\n" +
	"      vertex 1.0 1.0 0.0\n" +
	"      vertex 1.0 0.5 0.866\n" +
	"    endloop\n" +
	"  endfacet\n" +
	"  \n" +
	"  // This facet has extra whitespace and comments\n" +
	"  facet normal -1.0 0.0 0.0  \n" +
	"    outer loop  \n" +
	"      vertex 0.0 0.0 0.0     \n" +
	"      vertex 0.0 0.866 0.5   \n" +
	"      vertex 0.0 1.0 0.0     \n" +
	"    endloop    \n" +
	"  endfacet  \n" +
	"endsolid malformed_test"

const largeCoordinatesSTL = `solid large_coordinates
  facet normal 0.0 0.0 1.0
    outer loop
      vertex 1000000.0 2000000.0 3000000.0
      vertex 1000001.0 2000000.0 3000000.0
      vertex 1000000.5 2000000.866 3000000.0
    endloop
  endfacet
  facet normal 0.0 0.0 -1.0
    outer loop
      vertex -999999.0 -1999999.0 -2999999.0
      vertex -999998.5 -1999999.866 -2999999.0
      vertex -999998.0 -1999999.0 -2999999.0
    endloop
  endfacet
endsolid large_coordinates`

const precisionFloatSTL = `solid precision_test
  facet normal 0.123456789 0.987654321 0.555555555
    outer loop
      vertex 0.123456789012345 0.987654321098765 0.111111111111111
      vertex 0.234567890123456 0.876543210987654 0.222222222222222
      vertex 0.345678901234567 0.765432109876543 0.333333333333333
    endloop
  endfacet
  facet normal -0.707106781186547 0.707106781186547 0.0
    outer loop
      vertex 0.0 0.0 0.0
      vertex 0.707106781186547 0.707106781186547 0.0
      vertex 0.0 1.41421356237309 0.0
    endloop
  endfacet
endsolid precision_test`
