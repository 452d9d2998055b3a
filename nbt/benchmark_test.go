package nbt_test

import (
	"testing"

	"github.com/BaukeWestendorp/keisteen/nbt"
)

// Sample data structures for benchmarks

func makeSimpleCompound() nbt.Compound {
	return nbt.CompoundOf(
		nbt.KV{Name: "name", Tag: nbt.String("Steve")},
		nbt.KV{Name: "x", Tag: nbt.Double(100.5)},
		nbt.KV{Name: "y", Tag: nbt.Double(64.0)},
		nbt.KV{Name: "z", Tag: nbt.Double(-200.5)},
		nbt.KV{Name: "level", Tag: nbt.Int(42)},
	)
}

func makeComplexCompound() nbt.Compound {
	items := make([]nbt.Tag, 36)
	for i := range items {
		items[i] = nbt.CompoundOf(
			nbt.KV{Name: "id", Tag: nbt.String("minecraft:diamond")},
			nbt.KV{Name: "count", Tag: nbt.Byte(64)},
			nbt.KV{Name: "slot", Tag: nbt.Byte(int8(i))},
		)
	}

	return nbt.CompoundOf(
		nbt.KV{Name: "name", Tag: nbt.String("Steve")},
		nbt.KV{Name: "x", Tag: nbt.Double(100.5)},
		nbt.KV{Name: "y", Tag: nbt.Double(64.0)},
		nbt.KV{Name: "z", Tag: nbt.Double(-200.5)},
		nbt.KV{Name: "yaw", Tag: nbt.Float(90.0)},
		nbt.KV{Name: "pitch", Tag: nbt.Float(0.0)},
		nbt.KV{Name: "onGround", Tag: nbt.Byte(1)},
		nbt.KV{Name: "health", Tag: nbt.Float(20.0)},
		nbt.KV{Name: "foodLevel", Tag: nbt.Int(20)},
		nbt.KV{Name: "xpLevel", Tag: nbt.Int(30)},
		nbt.KV{Name: "xpTotal", Tag: nbt.Int(1395)},
		nbt.KV{Name: "score", Tag: nbt.Int(0)},
		nbt.KV{Name: "dimension", Tag: nbt.String("minecraft:overworld")},
		nbt.KV{Name: "playerUUID", Tag: nbt.IntArray{0x12345678, -0x65432110, 0x12345678, -0x65432110}},
		nbt.KV{Name: "inventory", Tag: nbt.List{
			ElementType: nbt.TagCompound,
			Elements:    items,
		}},
		nbt.KV{Name: "abilities", Tag: nbt.CompoundOf(
			nbt.KV{Name: "flying", Tag: nbt.Byte(0)},
			nbt.KV{Name: "mayfly", Tag: nbt.Byte(0)},
			nbt.KV{Name: "instabuild", Tag: nbt.Byte(0)},
			nbt.KV{Name: "invulnerable", Tag: nbt.Byte(0)},
			nbt.KV{Name: "walkSpeed", Tag: nbt.Float(0.1)},
			nbt.KV{Name: "flySpeed", Tag: nbt.Float(0.05)},
		)},
	)
}

// --- Encode Benchmarks ---

func BenchmarkEncodeSimple(b *testing.B) {
	compound := makeSimpleCompound()

	for b.Loop() {
		_, err := nbt.EncodeNetwork(compound)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeComplex(b *testing.B) {
	compound := makeComplexCompound()

	for b.Loop() {
		_, err := nbt.EncodeNetwork(compound)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeFile(b *testing.B) {
	compound := makeComplexCompound()

	for b.Loop() {
		_, err := nbt.EncodeFile(compound, "Player")
		if err != nil {
			b.Fatal(err)
		}
	}
}

// --- Decode Benchmarks ---

func BenchmarkDecodeSimple(b *testing.B) {
	compound := makeSimpleCompound()
	data, _ := nbt.EncodeNetwork(compound)

	for b.Loop() {
		_, err := nbt.DecodeNetwork(data)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeComplex(b *testing.B) {
	compound := makeComplexCompound()
	data, _ := nbt.EncodeNetwork(compound)

	for b.Loop() {
		_, err := nbt.DecodeNetwork(data)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeFile(b *testing.B) {
	compound := makeComplexCompound()
	data, _ := nbt.EncodeFile(compound, "Player")

	for b.Loop() {
		_, _, err := nbt.DecodeFile(data)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// --- Allocation Benchmarks ---

func BenchmarkEncodeAllocations(b *testing.B) {
	compound := makeComplexCompound()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = nbt.EncodeNetwork(compound)
	}
}

func BenchmarkDecodeAllocations(b *testing.B) {
	compound := makeComplexCompound()
	data, _ := nbt.EncodeNetwork(compound)
	b.ReportAllocs()

	for b.Loop() {
		_, _ = nbt.DecodeNetwork(data)
	}
}

