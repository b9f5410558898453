package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/shapecast"
)

// compressPayload aliases the payload directly when it already is a byte
// slice; anything else is rendered first. The cast is the whole fast path:
// no copy, no interface box.
func compressPayload[T any](enc *zstd.Encoder, v T) []byte {
	if raw, ok := shapecast.To[[]byte](v).Value(); ok {
		return enc.EncodeAll(raw, nil)
	}
	return enc.EncodeAll([]byte(fmt.Sprint(v)), nil)
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		log.Fatal(err)
	}

	payload := make([]byte, 1<<16)
	for i := range payload {
		payload[i] = byte(i)
	}

	var total int
	for i := 0; i < 10000; i++ {
		total += len(compressPayload(enc, payload))
		if v, ok := shapecast.Value[uint64](uint64(i)).Value(); ok {
			total += int(v & 1)
		}
	}
	log.Printf("compressed %d bytes total", total)

	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
