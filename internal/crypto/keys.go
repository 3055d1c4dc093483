package crypto

import "crypto/sha256"

// keyPrefix - фиксированный префикс для деривации ключа хранилища
const keyPrefix = "secure_storage_key_"

// DeriveStoreKey детерминированно выводит 32-байтовый ключ шифрования
// из имени namespace клиентского хранилища.
//
// Ключ не содержит никакого секрета, недоступного читателю исходников:
// это слой обфускации локально сохраненных значений, а не граница
// конфиденциальности. Поведение зафиксировано тестами и не должно
// "усиливаться" молча — одинаковый namespace всегда дает одинаковый ключ.
func DeriveStoreKey(namespace string) []byte {
	sum := sha256.Sum256([]byte(keyPrefix + namespace))
	return sum[:]
}
