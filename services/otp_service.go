package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"math/big"
	"regexp"
	"time"

	"github.com/redis/go-redis/v9"
)

// Phone login errors, mapped to the human-readable messages the
// storefront displays. Callers match with errors.Is.
var (
	ErrInvalidPhone    = errors.New("Please enter a valid 10-digit mobile number")
	ErrQuotaExceeded   = errors.New("SMS quota exceeded. Please try again tomorrow")
	ErrTooManyRequests = errors.New("Too many requests. Please wait a minute before retrying")
	ErrInvalidOTP      = errors.New("Incorrect OTP. Please check and try again")
	ErrOTPExpired      = errors.New("OTP expired. Please request a new one")
)

const (
	otpLength        = 6
	otpTTL           = 5 * time.Minute
	otpResendCool    = time.Minute
	otpDailyQuota    = 10
	otpMaxAttempts   = 5
)

var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// OTPSender delivers a one-time code to a phone number. The production
// sender is the SMS gateway; tests and local dev use the console sender.
type OTPSender interface {
	Send(ctx context.Context, phone, code string) error
}

// ConsoleOTPSender logs codes instead of sending SMS. Local dev only.
type ConsoleOTPSender struct{}

func (ConsoleOTPSender) Send(_ context.Context, phone, code string) error {
	log.Printf("[otp.console] phone=%s code=%s", phone, code)
	return nil
}

// OTPService issues and verifies phone login codes backed by Redis.
type OTPService struct {
	redis  *redis.Client
	sender OTPSender
}

var otpService *OTPService

func InitOTPService(client *redis.Client, sender OTPSender) {
	otpService = &OTPService{redis: client, sender: sender}
}

func GetOTPService() *OTPService {
	return otpService
}

// SendOTP validates the phone, enforces the resend cooldown and daily
// quota, then generates, stores and delivers a fresh code.
func (s *OTPService) SendOTP(ctx context.Context, phone string) error {
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}

	coolKey := "otp:cool:" + phone
	ok, err := s.redis.SetNX(ctx, coolKey, 1, otpResendCool).Result()
	if err != nil {
		return fmt.Errorf("otp cooldown check: %w", err)
	}
	if !ok {
		return ErrTooManyRequests
	}

	quotaKey := "otp:quota:" + phone
	sent, err := s.redis.Incr(ctx, quotaKey).Result()
	if err != nil {
		return fmt.Errorf("otp quota check: %w", err)
	}
	if sent == 1 {
		s.redis.Expire(ctx, quotaKey, 24*time.Hour)
	}
	if sent > otpDailyQuota {
		return ErrQuotaExceeded
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("otp generation: %w", err)
	}

	pipe := s.redis.TxPipeline()
	pipe.Set(ctx, "otp:code:"+phone, hashOTP(code), otpTTL)
	pipe.Set(ctx, "otp:attempts:"+phone, 0, otpTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("otp store: %w", err)
	}

	if err := s.sender.Send(ctx, phone, code); err != nil {
		return fmt.Errorf("otp delivery: %w", err)
	}

	log.Printf("[otp.send] phone=%s sent_today=%d", phone, sent)
	return nil
}

// VerifyOTP checks the submitted code and consumes it on success.
func (s *OTPService) VerifyOTP(ctx context.Context, phone, code string) error {
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}

	stored, err := s.redis.Get(ctx, "otp:code:"+phone).Result()
	if errors.Is(err, redis.Nil) {
		return ErrOTPExpired
	}
	if err != nil {
		return fmt.Errorf("otp lookup: %w", err)
	}

	attempts, err := s.redis.Incr(ctx, "otp:attempts:"+phone).Result()
	if err != nil {
		return fmt.Errorf("otp attempts: %w", err)
	}
	if attempts > otpMaxAttempts {
		// Burn the code after repeated failures.
		s.redis.Del(ctx, "otp:code:"+phone)
		return ErrTooManyRequests
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(hashOTP(code))) != 1 {
		return ErrInvalidOTP
	}

	s.redis.Del(ctx, "otp:code:"+phone, "otp:attempts:"+phone)
	return nil
}

func generateOTP() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpLength, n), nil
}

func hashOTP(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
