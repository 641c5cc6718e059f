package main

import (
	"log"

	"github.com/AWeirdDev/moving"
)

func main() {
	words := []string{"alpha", "beta", "gamma"}
	m, err := moving.NMovable(moving.FromSlice(words), 3)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("took slot 1: %q", m.Take(1).MustGet())

	rest := m.IntoSlots()
	for i := 0; i < rest.Len(); i++ {
		if v, ok := rest.At(i).Get(); ok {
			log.Printf("slot %d still holds %q", i, v)
		} else {
			log.Printf("slot %d is empty", i)
		}
	}

	mv := moving.Movable(moving.FromSlice([]int{1, 2, 3, 4, 5}))
	front := mv.TakeRange(0, 2)
	log.Printf("took %d leading slots, %d remain wrapped", len(front), mv.Len())
}
