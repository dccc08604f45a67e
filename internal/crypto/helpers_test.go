package crypto

import "github.com/MKhiriev/go-pass-vault/internal/config"

func configCrypto(time, memory uint32, threads uint8) config.Crypto {
	return config.Crypto{ArgonTime: time, ArgonMemory: memory, ArgonThreads: threads}
}
