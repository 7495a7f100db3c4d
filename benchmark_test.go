package guid

import (
	"testing"
)

func BenchmarkParse(b *testing.B) {
	s := "{6B29FC40-CA47-1067-B31D-00DD010662DA}"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Lowercase(b *testing.B) {
	s := "{6b29fc40-ca47-1067-b31d-00dd010662da}"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Invalid(b *testing.B) {
	s := "{6B29FC4G-CA47-1067-B31D-00DD010662DA}"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(s); err == nil {
			b.Fatal("expected parse error")
		}
	}
}

func BenchmarkParse_Concurrent(b *testing.B) {
	s := "{6B29FC40-CA47-1067-B31D-00DD010662DA}"
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, err := Parse(s)
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkGuid_String(b *testing.B) {
	g := MustParse("{6B29FC40-CA47-1067-B31D-00DD010662DA}")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = g.String()
	}
}

func BenchmarkGuid_Bytes(b *testing.B) {
	g := MustParse("{6B29FC40-CA47-1067-B31D-00DD010662DA}")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = g.Bytes()
	}
}

func BenchmarkGuid_MarshalText(b *testing.B) {
	g := MustParse("{6B29FC40-CA47-1067-B31D-00DD010662DA}")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := g.MarshalText()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGuid_UnmarshalText(b *testing.B) {
	text := []byte("{6B29FC40-CA47-1067-B31D-00DD010662DA}")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var g Guid
		if err := g.UnmarshalText(text); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGuid_EncodeToHex(b *testing.B) {
	g := MustParse("{6B29FC40-CA47-1067-B31D-00DD010662DA}")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = g.EncodeToHex()
	}
}

func BenchmarkDecodeFromHex(b *testing.B) {
	s := "6b29fc40ca471067b31d00dd010662da"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := DecodeFromHex(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGuid_Compare(b *testing.B) {
	g1, _ := New()
	g2, _ := New()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = g1.Compare(g2)
	}
}

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, err := New()
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}
