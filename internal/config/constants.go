package config

import "math/big"

const SourceFileExt = ".qd"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".qd", ".quadra"}

// ManifestFileName is the project manifest looked up next to source files.
const ManifestFileName = "Quadra.yaml"

// MainFuncName is the circuit entry point.
const MainFuncName = "main"

// MaxArraySize bounds fixed-size array declarations; sizes must fit u32
// because downstream layout indexes cells with 32-bit offsets.
const MaxArraySize = 1<<32 - 1

// fieldModulusStr is the order of the BN254 scalar field, the arithmetic
// the default proving backend runs over. Constant values must reduce below
// this.
const fieldModulusStr = "21888242871839275222246405745257275088548364400416034343698204186575808495617"

var fieldModulus, _ = new(big.Int).SetString(fieldModulusStr, 10)

// FieldModulus returns a copy of the field modulus.
func FieldModulus() *big.Int {
	return new(big.Int).Set(fieldModulus)
}

// FitsField reports whether v is a canonical field element: non-negative
// and strictly below the modulus.
func FitsField(v *big.Int) bool {
	return v.Sign() >= 0 && v.Cmp(fieldModulus) < 0
}
