package blitmask

//go:generate go run ../../cmd/blitgen generate --out . --package blitmask
//go:generate go run ../../cmd/blitgen generate --test --out . --package blitmask
