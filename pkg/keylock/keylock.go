// Package keylock 提供以字串 key 為單位的互斥鎖
// 用來將同一帳戶的 read-modify-write 序列化，避免 lost-update
package keylock

import (
	"hash/fnv"
	"sync"
)

const defaultShards = 64

// KeyLock 分片式的 per-key mutex
// 同一個 key 永遠落在同一個 shard，不同 key 可能共用 shard (可接受的偽衝突)
type KeyLock struct {
	shards []sync.Mutex
}

// New 建立一個 KeyLock，shards <= 0 時使用預設分片數
func New(shards int) *KeyLock {
	if shards <= 0 {
		shards = defaultShards
	}
	return &KeyLock{shards: make([]sync.Mutex, shards)}
}

func (k *KeyLock) index(key string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return h.Sum32() % uint32(len(k.shards))
}

// Lock 鎖定單一 key，回傳對應的 unlock 函式
func (k *KeyLock) Lock(key string) func() {
	i := k.index(key)
	k.shards[i].Lock()
	return k.shards[i].Unlock
}

// LockPair 同時鎖定兩個 key，依 shard index 排序取鎖以避免死鎖
// 兩個 key 落在同一 shard 時只取一次鎖
func (k *KeyLock) LockPair(a, b string) func() {
	i, j := k.index(a), k.index(b)
	if i == j {
		k.shards[i].Lock()
		return k.shards[i].Unlock
	}
	if i > j {
		i, j = j, i
	}
	k.shards[i].Lock()
	k.shards[j].Lock()
	return func() {
		k.shards[j].Unlock()
		k.shards[i].Unlock()
	}
}
