package codegen

// preamble is the fixed C++ runtime header emitted verbatim before user
// code (spec.md §4.4, §6.3, §8 — "data, not a subsystem"). It is grounded
// directly on original_source/src/codegen.cc's emitPreamble (lines
// ~83-316): the same `none`/`rox_result<T>`/RoxString/RoxRange/rox_*
// helper shapes, normalized to the string-error convention spec.md §6.3
// and §9's Open Question call for uniformly (the original's `num32 err`
// variant is dropped).
const preamble = `#include <iostream>
#include <vector>
#include <unordered_map>
#include <string>
#include <cmath>
#include <cstdint>

// rox runtime

struct None { bool operator==(const None&) const { return true; } };
const None none = {};

class RoxString {
public:
    std::string val;
    RoxString(const char* s) : val(s) {}
    RoxString(std::string s) : val(std::move(s)) {}
    RoxString() = default;

    int64_t size() const { return (int64_t)val.size(); }
    bool operator==(const RoxString& other) const { return val == other.val; }
    bool operator!=(const RoxString& other) const { return val != other.val; }
};

std::ostream& operator<<(std::ostream& os, const RoxString& s) {
    return os << s.val;
}

RoxString rox_str(const char* s) {
    return RoxString(s);
}

struct RoxRange {
    int64_t start_, end_, step_;
    RoxRange(int64_t s, int64_t e, int64_t st) : start_(s), end_(e), step_(st) {
        if (st == 0) { std::cerr << "Runtime Error: range() step cannot be 0." << std::endl; exit(1); }
    }
    struct Iterator {
        int64_t current, step, end;
        int64_t operator*() const { return current; }
        Iterator& operator++() { current += step; return *this; }
        bool operator!=(const Iterator& o) const {
            return step > 0 ? current < o.current : current > o.current;
        }
    };
    Iterator begin() const { return {start_, step_, end_}; }
    Iterator end() const { return {end_, step_, end_}; }
};

template<typename T>
struct rox_result {
    T value;
    RoxString err;
};

template<typename T>
bool isOk(rox_result<T> r) {
    return r.err.val.empty();
}

template<typename T>
T getValue(rox_result<T> r) {
    if (!r.err.val.empty()) {
        std::cerr << "Runtime Error: " << r.err.val << std::endl;
        exit(1);
    }
    return r.value;
}

template<typename T>
RoxString getError(rox_result<T> r) {
    return r.err;
}

template<typename T>
rox_result<T> ok(T value) { return {value, RoxString("")}; }
template<typename T>
rox_result<T> error(const char* msg) { return {T{}, RoxString(msg)}; }

const double pi = 3.141592653589793;
const double e  = 2.718281828459045;

template<typename... Args>
None print(const Args&... args) {
    ((std::cout << args), ...);
    return none;
}

template<typename T>
rox_result<T> rox_at(const std::vector<T>& xs, int64_t i) {
    if (i < 0 || i >= (int64_t)xs.size()) return error<T>("Index out of bounds");
    return ok(xs[i]);
}

rox_result<char> rox_at(const RoxString& s, int64_t i) {
    if (i < 0 || i >= s.size()) return error<char>("Index out of bounds");
    return ok(s.val[i]);
}

template<typename T>
void rox_set(std::vector<T>& xs, int64_t i, T val) {
    if (i < 0 || i >= (int64_t)xs.size()) {
        std::cerr << "Runtime Error: Index out of bounds" << std::endl;
        exit(1);
    }
    xs[i] = val;
}

template<typename T>
rox_result<T> rox_div(T a, T b) {
    if (b == 0) return error<T>("Division by zero");
    return ok(a / b);
}

template<typename T>
rox_result<T> rox_mod(T a, T b) {
    if (b == 0) return error<T>("Division by zero");
    return ok(a % b);
}

namespace std {
    template <> struct hash<RoxString> {
        size_t operator()(const RoxString& s) const {
            return hash<string>()(s.val);
        }
    };
}

template<typename K, typename V>
rox_result<V> rox_get(const std::unordered_map<K, V>& dict, K key) {
    auto it = dict.find(key);
    if (it == dict.end()) return error<V>("Key not found");
    return ok(it->second);
}

template<typename K, typename V>
void rox_set(std::unordered_map<K, V>& dict, K key, V val) {
    dict.insert_or_assign(key, val);
}

template<typename K, typename V>
void rox_remove(std::unordered_map<K, V>& dict, K key) {
    dict.erase(key);
}

template<typename K, typename V>
bool rox_has(const std::unordered_map<K, V>& dict, K key) {
    return dict.find(key) != dict.end();
}

template<typename K, typename V>
std::vector<K> rox_keys(const std::unordered_map<K, V>& dict) {
    std::vector<K> keys;
    keys.reserve(dict.size());
    for (const auto& kv : dict) keys.push_back(kv.first);
    return keys;
}

int64_t int64_abs(int64_t x) { return std::abs(x); }
int64_t int64_min(int64_t x, int64_t y) { return std::min(x, y); }
int64_t int64_max(int64_t x, int64_t y) { return std::max(x, y); }
rox_result<int64_t> int64_pow(int64_t base, int64_t exp) {
    if (exp < 0) return error<int64_t>("Negative exponent");
    int64_t res = 1;
    for (int64_t i = 0; i < exp; ++i) res *= base;
    return ok(res);
}

double float64_abs(double x) { return std::abs(x); }
double float64_min(double x, double y) { return std::min(x, y); }
double float64_max(double x, double y) { return std::max(x, y); }
double float64_pow(double x, double y) { return std::pow(x, y); }
rox_result<double> float64_sqrt(double x) {
    if (x < 0) return error<double>("Negative input for sqrt");
    return ok(std::sqrt(x));
}
double float64_sin(double x) { return std::sin(x); }
double float64_cos(double x) { return std::cos(x); }
double float64_tan(double x) { return std::tan(x); }
rox_result<double> float64_log(double x) {
    if (x <= 0) return error<double>("Non-positive input for log");
    return ok(std::log(x));
}
double float64_exp(double x) { return std::exp(x); }
double float64_floor(double x) { return std::floor(x); }
double float64_ceil(double x) { return std::ceil(x); }

// end rox runtime

`
