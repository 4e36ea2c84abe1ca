package admission

import "github.com/redis/go-redis/v9"

// 所有會改變 waiting/active 集合的操作都在 Lua 內完成，確保 compare-and-move 的原子性。
// 時間戳 (ms) 與 TTL 一律由 Go 端以字串傳入，腳本內不做數字轉字串。

// issueScript
// KEYS: waiting, active, seq, token hash, new index
// ARGV: user_id, new token, now_ms, waiting_ttl_sec, index prefix
// 回傳 {token, status, created_at, activated_at, expires_at, rank}
var issueScript = redis.NewScript(`
local waiting, active, seq, hash, newIndex = KEYS[1], KEYS[2], KEYS[3], KEYS[4], KEYS[5]
local uid, token, now, ttl, indexPrefix = ARGV[1], ARGV[2], ARGV[3], ARGV[4], ARGV[5]

local status = redis.call('HGET', hash, 'status')
if status == 'ACTIVE' then
  local exp = tonumber(redis.call('HGET', hash, 'expires_at') or '0')
  if exp <= tonumber(now) then
    redis.call('ZREM', active, uid)
    status = 'EXPIRED'
  end
end

if status == 'WAITING' or status == 'ACTIVE' then
  local rank = -1
  if status == 'WAITING' then
    rank = redis.call('ZRANK', waiting, uid)
    if not rank then
      redis.call('ZADD', waiting, redis.call('INCR', seq), uid)
      rank = redis.call('ZRANK', waiting, uid)
    end
  end
  local f = redis.call('HMGET', hash, 'token', 'status', 'created_at', 'activated_at', 'expires_at')
  return {f[1], f[2], f[3], f[4], f[5], rank}
end

local old = redis.call('HGET', hash, 'token')
if old then
  redis.call('DEL', indexPrefix .. old)
end
redis.call('DEL', hash)
redis.call('HSET', hash, 'user_id', uid, 'token', token, 'status', 'WAITING',
  'created_at', now, 'activated_at', '0', 'expires_at', '0')
redis.call('EXPIRE', hash, ttl)
redis.call('SET', newIndex, uid, 'EX', ttl)
redis.call('ZADD', waiting, redis.call('INCR', seq), uid)
return {token, 'WAITING', now, '0', '0', redis.call('ZRANK', waiting, uid)}
`)

// statusScript 唯讀
// KEYS: index, waiting
// ARGV: hash prefix, token
// 回傳 {user_id, status, created_at, activated_at, expires_at, rank} 或 nil
var statusScript = redis.NewScript(`
local uid = redis.call('GET', KEYS[1])
if not uid then
  return false
end
local f = redis.call('HMGET', ARGV[1] .. uid, 'token', 'status', 'created_at', 'activated_at', 'expires_at')
if f[1] ~= ARGV[2] then
  return false
end
local rank = -1
if f[2] == 'WAITING' then
  rank = redis.call('ZRANK', KEYS[2], uid)
  if not rank then
    rank = redis.call('ZCARD', KEYS[2])
  end
end
return {uid, f[2], f[3], f[4], f[5], rank}
`)

// validateScript ACTIVE 但已過期時就地轉為 EXPIRED 並釋放名額
// KEYS: index, active
// ARGV: hash prefix, token, now_ms, expired_retention_sec
// 回傳 {code, user_id, ...}；1 有效、-1 不存在、-2 非 ACTIVE、-3 已過期
var validateScript = redis.NewScript(`
local uid = redis.call('GET', KEYS[1])
if not uid then
  return {-1}
end
local hash = ARGV[1] .. uid
local f = redis.call('HMGET', hash, 'token', 'status', 'created_at', 'activated_at', 'expires_at')
if f[1] ~= ARGV[2] then
  return {-1}
end
if f[2] ~= 'ACTIVE' then
  return {-2, uid, f[2]}
end
if tonumber(f[5]) <= tonumber(ARGV[3]) then
  redis.call('HSET', hash, 'status', 'EXPIRED')
  redis.call('EXPIRE', hash, ARGV[4])
  redis.call('EXPIRE', KEYS[1], ARGV[4])
  redis.call('ZREM', KEYS[2], uid)
  return {-3, uid}
end
return {1, uid, f[3], f[4], f[5]}
`)

// activateScript 依序從 waiting 頭部取出，最多 min(n, max_active - |active|) 個
// KEYS: waiting, active
// ARGV: n, max_active, now_ms, expires_at_ms, hash prefix, hash_ttl_sec, index prefix
// 回傳被啟用的 user_id 陣列
var activateScript = redis.NewScript(`
local n = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2]) - redis.call('ZCARD', KEYS[2])
if capacity < n then
  n = capacity
end
local activated = {}
while #activated < n do
  local head = redis.call('ZRANGE', KEYS[1], 0, 0)
  if #head == 0 then
    break
  end
  local uid = head[1]
  redis.call('ZREM', KEYS[1], uid)
  local hash = ARGV[5] .. uid
  if redis.call('HGET', hash, 'status') == 'WAITING' then
    redis.call('HSET', hash, 'status', 'ACTIVE', 'activated_at', ARGV[3], 'expires_at', ARGV[4])
    redis.call('EXPIRE', hash, ARGV[6])
    local token = redis.call('HGET', hash, 'token')
    if token then
      redis.call('EXPIRE', ARGV[7] .. token, ARGV[6])
    end
    redis.call('ZADD', KEYS[2], ARGV[4], uid)
    activated[#activated + 1] = uid
  end
end
return activated
`)

// reconcileScript 將 expires_at <= now 的 ACTIVE 轉為 EXPIRED
// KEYS: active
// ARGV: now_ms, hash prefix, expired_retention_sec, index prefix
var reconcileScript = redis.NewScript(`
local expired = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1])
for _, uid in ipairs(expired) do
  redis.call('ZREM', KEYS[1], uid)
  local hash = ARGV[2] .. uid
  if redis.call('HGET', hash, 'status') == 'ACTIVE' then
    redis.call('HSET', hash, 'status', 'EXPIRED')
    redis.call('EXPIRE', hash, ARGV[3])
    local token = redis.call('HGET', hash, 'token')
    if token then
      redis.call('EXPIRE', ARGV[4] .. token, ARGV[3])
    end
  end
end
return #expired
`)

// releaseScript 提前釋放名額（WAITING 放棄排隊亦同）
// KEYS: index, active, waiting
// ARGV: hash prefix, token, expired_retention_sec
var releaseScript = redis.NewScript(`
local uid = redis.call('GET', KEYS[1])
if not uid then
  return 0
end
local hash = ARGV[1] .. uid
if redis.call('HGET', hash, 'token') ~= ARGV[2] then
  return 0
end
redis.call('ZREM', KEYS[2], uid)
redis.call('ZREM', KEYS[3], uid)
redis.call('HSET', hash, 'status', 'EXPIRED')
redis.call('EXPIRE', hash, ARGV[3])
redis.call('EXPIRE', KEYS[1], ARGV[3])
return 1
`)
